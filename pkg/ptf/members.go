package ptf

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
)

// MemberName returns the file name of member i of the family rooted at root.
// Member 0 is the root itself; later members append a two-digit ordinal,
// zero padded below 10 and unpadded from 10 upwards.
func MemberName(root string, i int) string {
	switch {
	case i <= 0:
		return root
	case i < 10:
		return root + "0" + strconv.Itoa(i)
	default:
		return root + strconv.Itoa(i)
	}
}

// LocateMembers returns the paths of every member of the family rooted at
// root, in member order. Discovery stops at the first ordinal whose file does
// not exist.
func LocateMembers(root string) ([]string, error) {
	st, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ioError("locate", root, ErrNotFound, err)
		}
		return nil, ioError("locate", root, ErrIO, err)
	}
	if st.IsDir() {
		return nil, ioError("locate", root, ErrNotFound, errors.New("is a directory"))
	}

	members := []string{root}
	for i := 1; ; i++ {
		name := MemberName(root, i)
		st, err := os.Stat(name)
		if err != nil || st.IsDir() {
			break
		}
		members = append(members, name)
	}
	return members, nil
}

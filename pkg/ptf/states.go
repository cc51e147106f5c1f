package ptf

import (
	"fmt"
	"sort"
)

// StateDescriptor locates one state record. Descriptors are immutable once
// the family is open.
type StateDescriptor struct {
	// Sequence is the 1-based state number across the whole family.
	Sequence int `json:"sequence"`
	// Member is the index of the member file holding the record.
	Member int `json:"member"`
	// Address is the word address of the record's time word within Member.
	Address int64 `json:"address"`
	// FamilyAddress is the same position in the family-wide word space,
	// where member i starts after the words of members 0..i-1.
	FamilyAddress int64   `json:"family_address"`
	Time          float32 `json:"time"`
}

// scanStates walks every member from its first state address, reading one
// time word per record until the sentinel time ends that member's run. Member
// 0 starts at the first state address; later members start at word 0.
func (f *Family) scanStates() error {
	var (
		states  []StateDescriptor
		timeBuf [WordSize]byte
		base    int64
	)
	bases := make([]int64, len(f.members))
	words := make([]int64, len(f.members))
	record := f.layout.RecordLength()
	if record <= 0 {
		return fmt.Errorf("%w: state record length %d", ErrUnknownFormat, record)
	}

	for m, path := range f.members {
		if err := f.selectMember(m); err != nil {
			return err
		}
		st, err := f.file.Stat()
		if err != nil {
			return ioError("stat", path, ErrIO, err)
		}
		size := st.Size()

		addr := int64(0)
		if m == 0 {
			addr = f.layout.FirstStateAddr
		}
		count := 0
		for {
			remaining := size - addr*WordSize
			if remaining < WordSize {
				f.log.Debug("member ended without sentinel", "member", m, "path", path)
				break
			}
			if err := readWordsAt(f.file, path, timeBuf[:], addr); err != nil {
				return err
			}
			t := decodeFloat(timeBuf[:], f.order)
			if t == SentinelTime {
				break
			}
			if remaining < record*WordSize {
				f.log.Warn("ignoring incomplete trailing state record",
					"member", m, "path", path, "address", addr, "time", t)
				break
			}
			states = append(states, StateDescriptor{
				Sequence:      len(states) + 1,
				Member:        m,
				Address:       addr,
				FamilyAddress: base + addr,
				Time:          t,
			})
			count++
			addr += record
		}
		f.log.Debug("scanned member", "member", m, "path", path, "states", count)

		bases[m] = base
		words[m] = (size + WordSize - 1) / WordSize
		base += words[m]
	}

	f.states = states
	f.memberBase = bases
	f.memberWords = words
	return nil
}

// Locate translates a family-wide word address into a member index and the
// word address within that member.
func (f *Family) Locate(familyAddr int64) (member int, addr int64, err error) {
	n := len(f.memberBase)
	i := sort.Search(n, func(i int) bool { return f.memberBase[i] > familyAddr }) - 1
	if i < 0 || familyAddr < 0 || familyAddr >= f.memberBase[i]+f.memberWords[i] {
		return 0, 0, errIndex("family address", familyAddr, f.familyWords())
	}
	return i, familyAddr - f.memberBase[i], nil
}

func (f *Family) familyWords() int64 {
	n := len(f.memberBase)
	if n == 0 {
		return 0
	}
	return f.memberBase[n-1] + f.memberWords[n-1]
}

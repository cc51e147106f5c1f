package ptf

// Summary is a flat description of an open family for reports.
type Summary struct {
	Root        string   `json:"root"`
	Members     []string `json:"members"`
	ByteOrder   string   `json:"byte_order"`
	Dialect     string   `json:"dialect"`
	Swapped     bool     `json:"swapped"`
	StatePolicy string   `json:"state_policy"`

	Dimension      int  `json:"dimension"`
	NodeCount      int  `json:"node_count"`
	ShellCount     int  `json:"shell_count"`
	SolidCount     int  `json:"solid_count"`
	BeamCount      int  `json:"beam_count"`
	ThickCount     int  `json:"thick_shell_count"`
	PartCount      int  `json:"part_count"`
	GlobalVarCount int  `json:"global_var_count"`
	Displacements  bool `json:"displacements"`
	DeletionTable  bool `json:"deletion_table"`

	StateCount int      `json:"state_count"`
	FirstTime  *float32 `json:"first_time,omitempty"`
	LastTime   *float32 `json:"last_time,omitempty"`

	Layout Layout `json:"layout"`
}

func (f *Family) Summary() Summary {
	p := f.params
	s := Summary{
		Root:           f.root,
		Members:        f.Members(),
		ByteOrder:      f.order.String(),
		Dialect:        f.dialect.String(),
		Swapped:        f.swapped,
		StatePolicy:    f.policy.String(),
		Dimension:      p.Dimension,
		NodeCount:      p.NodeCount,
		ShellCount:     p.ShellCount,
		SolidCount:     p.SolidCount,
		BeamCount:      p.BeamCount,
		ThickCount:     p.ThickShellCount,
		PartCount:      len(f.parts),
		GlobalVarCount: p.GlobalVarCount,
		Displacements:  p.DisplacementFlag,
		DeletionTable:  p.HasDeletionTable(),
		StateCount:     len(f.states),
		Layout:         f.layout,
	}
	if n := len(f.states); n > 0 {
		first, last := f.states[0].Time, f.states[n-1].Time
		s.FirstTime, s.LastTime = &first, &last
	}
	return s
}

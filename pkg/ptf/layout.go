package ptf

// Layout holds the word lengths and addresses derived from the control block.
// Addresses are word offsets into member 0.
type Layout struct {
	GeometryLength      int64 `json:"geometry_length"`
	StateLength         int64 `json:"state_length"` // words per state record, excluding the time word
	DeletionTableLength int64 `json:"deletion_table_length"`
	CoordAddr           int64 `json:"coord_addr"`
	ShellTopologyAddr   int64 `json:"shell_topology_addr"`
	FirstStateAddr      int64 `json:"first_state_addr"`
}

// RecordLength is the full length of one state record including its time word.
func (l Layout) RecordLength() int64 { return l.StateLength + 1 }

// DeriveLayout computes the geometry and state record layout for p. It is a
// pure function of p; zero element counts contribute nothing.
func DeriveLayout(p ControlParameters) Layout {
	nodes := int64(p.NodeCount)
	solids := int64(p.SolidCount)
	beams := int64(p.BeamCount)
	shells := int64(p.ShellCount)
	thick := int64(p.ThickShellCount)

	beforeShells := nodes*lenCoord +
		solids*lenSolidTopology +
		thick*lenThickShellTopology +
		beams*lenBeamTopology

	var l Layout
	l.GeometryLength = beforeShells + shells*lenShellTopology + int64(p.ArbitraryDataCount)
	l.CoordAddr = coordBlockAddress
	l.ShellTopologyAddr = coordBlockAddress + beforeShells
	l.FirstStateAddr = coordBlockAddress + l.GeometryLength

	nodal := []struct {
		set   bool
		width int64
	}{
		{p.TemperatureFlag(), lenTemperature},
		{p.DisplacementFlag, lenCoord},
		{p.VelocityFlag, lenVelocity},
		{p.AccelFlag, lenAccel},
		{p.MassScalingFlag(), lenMassScaling},
		{p.FluxFlag(), lenFlux},
		{p.TimeStepFlag, lenTimeStep},
	}

	n := int64(p.GlobalVarCount)
	for _, g := range nodal {
		if g.set {
			n += g.width * nodes
		}
	}
	n += int64(p.SolidVarCount) * solids
	n += int64(p.ShellVarCount) * (shells - int64(p.RigidShellCount))
	n += int64(p.BeamVarCount) * beams
	n += int64(p.ThickShellVarCount) * thick
	n += int64(p.RigidVarCount)
	n += int64(p.SPHVarCount) * int64(p.SPHNodeCount)
	n += int64(p.AirbagWords)

	l.DeletionTableLength = int64(p.DeletionTableLength())
	l.StateLength = n + l.DeletionTableLength
	return l
}

package ptf

import (
	"encoding/binary"
	"fmt"
)

// ControlParameters are the simulation parameters held in the control block.
// All counts are in elements or nodes; all lengths derived from them are in
// words.
type ControlParameters struct {
	Dimension      int
	NodeCount      int
	GlobalVarCount int

	// ThermalCode packs two conditions: the units digit selects temperature
	// (>0) and flux (>1) output, the tens digit selects mass scaling output.
	ThermalCode      int
	DisplacementFlag bool
	VelocityFlag     bool
	AccelFlag        bool
	TimeStepFlag     bool

	SolidCount      int
	BeamCount       int
	ShellCount      int
	ThickShellCount int

	SolidVarCount      int
	BeamVarCount       int
	ShellVarCount      int
	ThickShellVarCount int

	// PartBounds holds the per element type part upper bounds, indexed by
	// ElementType.
	PartBounds [4]int

	// MaxIntCode is the max integration point code. A negative value means
	// each state carries a deletion table.
	MaxIntCode int

	SPHNodeCount       int
	ArbitraryDataCount int

	// Rigid body, SPH and airbag state contributions. Always zero: those
	// records are recognised but not decoded.
	RigidShellCount int
	RigidVarCount   int
	SPHVarCount     int
	AirbagWords     int
}

// ParseControlBlock decodes the first ControlBlockWords words of member 0.
func ParseControlBlock(block []byte, order binary.ByteOrder) (ControlParameters, error) {
	if len(block) < ControlBlockWords*WordSize {
		return ControlParameters{}, fmt.Errorf("%w: control block needs %d bytes, got %d",
			ErrTruncatedRead, ControlBlockWords*WordSize, len(block))
	}
	word := func(i int) int {
		return int(int32(order.Uint32(block[i*WordSize:])))
	}

	p := ControlParameters{
		Dimension:          word(wordDimension),
		NodeCount:          word(wordNodeCount),
		GlobalVarCount:     word(wordGlobalVars),
		ThermalCode:        word(wordThermal),
		DisplacementFlag:   word(wordDisplacement) != 0,
		VelocityFlag:       word(wordVelocity) != 0,
		AccelFlag:          word(wordAcceleration) != 0,
		TimeStepFlag:       word(wordTimeStepFlag) != 0,
		SolidCount:         word(wordSolidCount),
		BeamCount:          word(wordBeamCount),
		ShellCount:         word(wordShellCount),
		ThickShellCount:    word(wordThickCount),
		SolidVarCount:      word(wordSolidVars),
		BeamVarCount:       word(wordBeamVars),
		ShellVarCount:      word(wordShellVars),
		ThickShellVarCount: word(wordThickVars),
		MaxIntCode:         word(wordMaxInt),
		ArbitraryDataCount: word(wordArbitrary),
	}
	p.PartBounds[Solid] = word(wordSolidParts)
	p.PartBounds[Beam] = word(wordBeamParts)
	p.PartBounds[Shell] = word(wordShellParts)
	p.PartBounds[ThickShell] = word(wordThickParts)

	if word(wordSPHNodes) > 0 || word(wordSPHMaterials) > 0 {
		p.SPHNodeCount = word(wordSPHNodes)
	}
	return p, nil
}

// validate rejects negative counts. Every length derived from the control
// block assumes non-negative inputs.
func (p ControlParameters) validate() error {
	counts := []struct {
		name string
		n    int
	}{
		{"node count", p.NodeCount},
		{"global variable count", p.GlobalVarCount},
		{"solid count", p.SolidCount},
		{"beam count", p.BeamCount},
		{"shell count", p.ShellCount},
		{"thick shell count", p.ThickShellCount},
		{"solid variable count", p.SolidVarCount},
		{"beam variable count", p.BeamVarCount},
		{"shell variable count", p.ShellVarCount},
		{"thick shell variable count", p.ThickShellVarCount},
		{"arbitrary data count", p.ArbitraryDataCount},
		{"sph node count", p.SPHNodeCount},
	}
	for _, c := range counts {
		if c.n < 0 {
			return fmt.Errorf("%w: negative %s %d", ErrUnknownFormat, c.name, c.n)
		}
	}
	for t, b := range p.PartBounds {
		if b < 0 {
			return fmt.Errorf("%w: negative %s part bound %d", ErrUnknownFormat, ElementType(t), b)
		}
	}
	return nil
}

// PartCount is the sum of the per element type part upper bounds. It is
// zero when the model has no parts of any type.
func (p ControlParameters) PartCount() int {
	n := 0
	for _, b := range p.PartBounds {
		n += b
	}
	return n
}

func (p ControlParameters) TemperatureFlag() bool { return p.ThermalCode%10 > 0 }
func (p ControlParameters) FluxFlag() bool        { return p.ThermalCode%10 > 1 }
func (p ControlParameters) MassScalingFlag() bool { return p.ThermalCode/10 > 0 }

// HasDeletionTable reports whether every state record ends in a deletion table.
func (p ControlParameters) HasDeletionTable() bool { return p.MaxIntCode < 0 }

// DeletionTableLength is the number of deletion table words per state. Codes
// above -10000 use the per-node convention, anything at or below it the
// per-element one.
func (p ControlParameters) DeletionTableLength() int {
	switch {
	case p.MaxIntCode >= 0:
		return 0
	case p.MaxIntCode > -deletionElementThreshold:
		return p.NodeCount
	default:
		return p.SolidCount + p.BeamCount + p.ShellCount + p.ThickShellCount
	}
}

// ElementCount returns the number of elements of type t.
func (p ControlParameters) ElementCount(t ElementType) int {
	switch t {
	case Solid:
		return p.SolidCount
	case Beam:
		return p.BeamCount
	case Shell:
		return p.ShellCount
	case ThickShell:
		return p.ThickShellCount
	default:
		return 0
	}
}

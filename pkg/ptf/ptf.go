// Package ptf reads TAURUS-style plot file families.
//
// A family is a root file plus sequentially numbered continuation members
// ("run.ptf", "run.ptf01", "run.ptf02", ...). The root starts with a 64 word
// control block, followed by the undeformed geometry and a run of
// time-stamped state records. Continuation members hold state records only.
// Every address in the format is measured in 4-byte words.
//
// The package is read-only: it never writes or mutates family members.
package ptf

import "fmt"

// Format constants must never change.
const (
	// WordSize is the size of one format word in bytes.
	WordSize = 4

	// ControlBlockWords is the length of the control block at the start of member 0.
	ControlBlockWords = 64

	// ProbeSize is the number of leading bytes inspected to detect the byte order.
	ProbeSize = 72

	// SentinelTime terminates the run of states within one member.
	SentinelTime float32 = -999999.0

	// deletionElementThreshold separates the per-node deletion table convention
	// (magnitude below the threshold) from the per-element one.
	deletionElementThreshold = 10000
)

// Words per node for each nodal variable group.
const (
	lenCoord       = 3
	lenTemperature = 1
	lenVelocity    = 3
	lenAccel       = 3
	lenMassScaling = 1
	lenFlux        = 3
	lenTimeStep    = 1
)

// Words per element in the geometry block.
const (
	lenSolidTopology      = 9
	lenThickShellTopology = 9
	lenBeamTopology       = 6
	lenShellTopology      = 5
)

// Control block word offsets.
const (
	wordDimension     = 15
	wordNodeCount     = 16
	wordCode          = 17
	wordGlobalVars    = 18
	wordThermal       = 19
	wordDisplacement  = 20
	wordVelocity      = 21
	wordAcceleration  = 22
	wordSolidCount    = 23
	wordSolidParts    = 24
	wordSolidVars     = 27
	wordBeamCount     = 28
	wordBeamParts     = 29
	wordBeamVars      = 30
	wordShellCount    = 31
	wordShellParts    = 32
	wordShellVars     = 33
	wordMaxInt        = 36
	wordSPHNodes      = 37
	wordSPHMaterials  = 38
	wordArbitrary     = 39
	wordThickCount    = 40
	wordThickParts    = 41
	wordThickVars     = 42
	wordTimeStepFlag  = 56
	coordBlockAddress = ControlBlockWords
)

// ElementType identifies one of the element classes stored in the geometry block.
type ElementType int

const (
	Solid ElementType = iota
	Beam
	Shell
	ThickShell
)

// FirstElementType and LastElementType bound iteration over element types.
const (
	FirstElementType = Solid
	LastElementType  = ThickShell
)

func (t ElementType) String() string {
	switch t {
	case Solid:
		return "solid"
	case Beam:
		return "beam"
	case Shell:
		return "shell"
	case ThickShell:
		return "thick-shell"
	default:
		return fmt.Sprintf("element(%d)", int(t))
	}
}

// Dialect is the control block flavour signalled by the endian probe.
type Dialect int

const (
	DialectUnknown Dialect = iota
	DialectDyna
	DialectTopaz
)

func (d Dialect) String() string {
	switch d {
	case DialectDyna:
		return "dyna"
	case DialectTopaz:
		return "topaz"
	default:
		return "unknown"
	}
}

package camelsde

import "strings"

// AttributeType selects one of the station attribute tables shipped with
// the dataset. The set is closed; anything else is rejected.
type AttributeType int

const (
	Topographic AttributeType = iota
	Soil
	Landcover
	Hydrogeology
	HumanInfluence
	Climatic
	Hydrologic
	SimulationBenchmark
)

var attributeTypeNames = [...]string{
	Topographic:         "topographic",
	Soil:                "soil",
	Landcover:           "landcover",
	Hydrogeology:        "hydrogeology",
	HumanInfluence:      "humaninfluence",
	Climatic:            "climatic",
	Hydrologic:          "hydrologic",
	SimulationBenchmark: "simulation_benchmark",
}

// AttributeTypes returns all attribute categories in dataset order.
func AttributeTypes() []AttributeType {
	types := make([]AttributeType, len(attributeTypeNames))
	for i := range attributeTypeNames {
		types[i] = AttributeType(i)
	}
	return types
}

func (t AttributeType) valid() bool {
	return t >= 0 && int(t) < len(attributeTypeNames)
}

// String returns the category name as used in the dataset file names.
func (t AttributeType) String() string {
	if !t.valid() {
		return "unknown"
	}
	return attributeTypeNames[t]
}

// ParseAttributeType parses a category name into an AttributeType.
func ParseAttributeType(s string) (AttributeType, error) {
	for i, name := range attributeTypeNames {
		if name == s {
			return AttributeType(i), nil
		}
	}
	return 0, NewValidationError("%s is not a valid attribute type, must be one of [%s]", s, attributeTypeList())
}

func attributeTypeList() string {
	return strings.Join(attributeTypeNames[:], ", ")
}

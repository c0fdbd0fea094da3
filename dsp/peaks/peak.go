package peaks

import "strings"

// Property selects classes of computed peak fields.
type Property uint8

const (
	// PropertyHeight fills Peak.Height.
	PropertyHeight Property = 1 << iota
	// PropertyThreshold fills Peak.LeftThreshold and Peak.RightThreshold.
	PropertyThreshold
	// PropertyPlateauSize fills Peak.PlateauSize.
	PropertyPlateauSize
	// PropertyProminence fills Peak.Prominence, Peak.LeftBase and Peak.RightBase.
	PropertyProminence

	// PropertyAll selects every computed field.
	PropertyAll = PropertyHeight | PropertyThreshold | PropertyPlateauSize | PropertyProminence
)

var propertyNames = []struct {
	p    Property
	name string
}{
	{PropertyHeight, "height"},
	{PropertyThreshold, "threshold"},
	{PropertyPlateauSize, "plateau_size"},
	{PropertyProminence, "prominence"},
}

// String returns a "|"-joined list of the selected property names.
func (p Property) String() string {
	if p == 0 {
		return "none"
	}
	var names []string
	for _, e := range propertyNames {
		if p&e.p != 0 {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, "|")
}

// Peak describes one local maximum plateau spanning
// [LeftPosition, RightPosition]. A single-sample peak has equal positions.
//
// The pointer fields are nil until the matching property class has been
// computed by a filter stage, a Finder.Request or Finder.Populate.
type Peak[T Sample] struct {
	LeftPosition  int
	RightPosition int

	Height         *T
	PlateauSize    *int
	LeftThreshold  *T // Height minus the sample left of the plateau
	RightThreshold *T // Height minus the sample right of the plateau

	Prominence *T
	LeftBase   *int // first higher sample to the left, or 0
	RightBase  *int // first higher sample to the right, or len-1
}

// MiddlePosition returns the plateau center, rounded toward LeftPosition for
// even plateau sizes.
func (p Peak[T]) MiddlePosition() int {
	return p.LeftPosition + (p.RightPosition-p.LeftPosition)/2
}

// Has reports whether every field of the given property classes is populated.
func (p Peak[T]) Has(props Property) bool {
	if props&PropertyHeight != 0 && p.Height == nil {
		return false
	}
	if props&PropertyThreshold != 0 && (p.LeftThreshold == nil || p.RightThreshold == nil) {
		return false
	}
	if props&PropertyPlateauSize != 0 && p.PlateauSize == nil {
		return false
	}
	if props&PropertyProminence != 0 && (p.Prominence == nil || p.LeftBase == nil || p.RightBase == nil) {
		return false
	}
	return true
}

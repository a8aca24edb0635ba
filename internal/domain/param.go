package domain

// LabelType identifies which entry field a registry value belongs to.
type LabelType string

const (
	LabelCategory LabelType = "kategoria"
	LabelRelated  LabelType = "kapcsolodo"
	LabelRole     LabelType = "szerep"
	LabelEmotion  LabelType = "erzelem"
	LabelGoal     LabelType = "cel"
)

// AllLabelTypes lists the label types in their canonical order.
var AllLabelTypes = []LabelType{
	LabelCategory, LabelRelated, LabelRole, LabelEmotion, LabelGoal,
}

// ValidLabelTypes is the set of accepted label type strings.
var ValidLabelTypes = map[string]bool{
	"kategoria": true, "kapcsolodo": true, "szerep": true, "erzelem": true, "cel": true,
}

// Param is a registered known value for one label type. The (Type, Name)
// pair is unique; params are created on first use and never mutated.
type Param struct {
	ID   string
	Type LabelType
	Name string
}

// LabelValue returns the entry field matching the given label type.
func (e *Entry) LabelValue(t LabelType) string {
	switch t {
	case LabelCategory:
		return e.Category
	case LabelRelated:
		return e.RelatedTo
	case LabelRole:
		return e.Role
	case LabelEmotion:
		return e.Emotion
	case LabelGoal:
		return e.Goal
	}
	return ""
}

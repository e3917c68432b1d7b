package driveform

// Problem names one reason a form cannot be submitted.
type Problem string

// Problems reported by Form.Problems
const (
	ProblemEmptySetName             Problem = "EMPTY_SET_NAME"
	ProblemInvalidSlot              Problem = "INVALID_SLOT"
	ProblemEmptyPrimary             Problem = "EMPTY_PRIMARY"
	ProblemPrimaryNotLegalForSlot   Problem = "PRIMARY_NOT_LEGAL_FOR_SLOT"
	ProblemSecondaryCountOutOfRange Problem = "SECONDARY_COUNT_OUT_OF_RANGE"
)

// Field returns the wire field a problem belongs to.
func (p Problem) Field() string {
	switch p {
	case ProblemEmptySetName:
		return "set_name"
	case ProblemInvalidSlot:
		return "position"
	case ProblemEmptyPrimary, ProblemPrimaryNotLegalForSlot:
		return "main_stat_name"
	case ProblemSecondaryCountOutOfRange:
		return "substats"
	default:
		return ""
	}
}

// Problems lists everything wrong with the form, in field order. Unlike
// IsValid it also flags a primary that the slot does not allow, which happens
// when fields are assigned without running the transitions.
func (f *Form) Problems() []Problem {
	var problems []Problem
	if f.SetName == "" {
		problems = append(problems, ProblemEmptySetName)
	}

	slotOK := f.Slot >= MinSlot && f.Slot <= MaxSlot
	if !slotOK {
		problems = append(problems, ProblemInvalidSlot)
	}

	switch {
	case f.PrimaryAttribute == "":
		problems = append(problems, ProblemEmptyPrimary)
	case slotOK && !IsLegalPrimary(f.Slot, f.PrimaryAttribute):
		problems = append(problems, ProblemPrimaryNotLegalForSlot)
	}

	if n := f.SecondaryCount(); n < MinSecondaries || n > MaxSecondaries {
		problems = append(problems, ProblemSecondaryCountOutOfRange)
	}
	return problems
}

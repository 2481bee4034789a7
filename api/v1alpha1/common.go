package v1alpha1

func StringToFormStatus(s string) FormStatus {
	switch s {
	case string(FormStatusCompleted):
		return FormStatusCompleted
	case string(FormStatusPending):
		return FormStatusPending
	case string(FormStatusDraft):
		return FormStatusDraft
	default:
		return FormStatusDraft
	}
}

func StringToFSOStatus(s string) FSOStatus {
	switch s {
	case string(FSOStatusProcessing):
		return FSOStatusProcessing
	case string(FSOStatusCompleted):
		return FSOStatusCompleted
	case string(FSOStatusFailed):
		return FSOStatusFailed
	case string(FSOStatusPending):
		return FSOStatusPending
	default:
		return FSOStatusPending
	}
}

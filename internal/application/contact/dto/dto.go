package dto

// SubmitContactRequest carries the raw, unvalidated form values into the
// application layer.
type SubmitContactRequest struct {
	Name     string
	Email    string
	Phone    string
	Service  string
	Date     string
	Time     string
	Message  string
	Language string
}

// SubmitContactResponse carries the localized success message back to the
// HTTP layer.
type SubmitContactResponse struct {
	Message string
}

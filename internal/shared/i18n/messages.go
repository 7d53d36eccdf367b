package i18n

// Messages is the table of user-facing strings for one language. Keeping
// them in a struct (instead of inline per-call ternaries) makes coverage of
// both languages checkable at a glance.
type Messages struct {
	MissingFields   string
	InvalidEmail    string
	InvalidRequest  string
	ServerConfig    string
	SendFailure     string
	TooManyRequests string
	Success         string
	ClientSubject   string
}

var messagesES = Messages{
	MissingFields:   "Por favor complete todos los campos requeridos.",
	InvalidEmail:    "Por favor ingrese un correo electrónico válido.",
	InvalidRequest:  "La solicitud no es válida. Por favor verifique los datos ingresados.",
	ServerConfig:    "Error de configuración del servidor. Por favor intente más tarde.",
	SendFailure:     "Ocurrió un error al procesar su solicitud. Por favor intente más tarde.",
	TooManyRequests: "Demasiadas solicitudes. Por favor intente más tarde.",
	Success:         "Su solicitud ha sido enviada exitosamente. Revise su correo electrónico para la confirmación.",
	ClientSubject:   "Confirmación de Solicitud - Apen y Asociados",
}

var messagesEN = Messages{
	MissingFields:   "Please fill in all required fields.",
	InvalidEmail:    "Please enter a valid email address.",
	InvalidRequest:  "The request is not valid. Please check the submitted data.",
	ServerConfig:    "Server configuration error. Please try again later.",
	SendFailure:     "An error occurred while processing your request. Please try again later.",
	TooManyRequests: "Too many requests. Please try again later.",
	Success:         "Your request has been sent successfully. Check your email for confirmation.",
	ClientSubject:   "Request Confirmation - Apen y Asociados",
}

// ForLanguage returns the message table for the given language.
func ForLanguage(lang Language) Messages {
	if lang == LanguageEN {
		return messagesEN
	}
	return messagesES
}

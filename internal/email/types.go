package email

// Email представляет структуру email сообщения
type Email struct {
	From     string
	To       []string
	Cc       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData представляет данные для шаблонов писем
type TemplateData map[string]interface{}

// Имена встроенных шаблонов
const (
	TemplateApplicationReceived = "application_received"
	TemplateStatusChanged       = "application_status_changed"
)

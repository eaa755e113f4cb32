package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendTemplate отправляет email по шаблону
	SendTemplate(to []string, subject string, templateName string, data TemplateData) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}

// TemplateRenderer определяет интерфейс для рендеринга шаблонов
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}

// NewProvider выбирает SMTP, если задан хост, иначе письма только логируются
func NewProvider(config *SMTPConfig, renderer TemplateRenderer) Provider {
	if config == nil || config.Host == "" {
		return NewLogProvider(renderer)
	}
	return NewSMTPProvider(config, renderer)
}

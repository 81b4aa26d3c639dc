package service

import (
	"strings"

	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/pkg/whatsapp"
)

// MessageTemplate is a canned outreach message with {variable}
// placeholders the user fills in before sending.
type MessageTemplate struct {
	Type      enum.AlertType `json:"type"`
	Title     string         `json:"title"`
	Template  string         `json:"template"`
	Variables []string       `json:"variables"`
}

// PersonalizedMessage is the result of filling a template
type PersonalizedMessage struct {
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
}

// MessageService serves the canned outreach templates and fills them
// with customer data.
type MessageService struct {
	templates []MessageTemplate
}

// NewMessageService creates a new message service
func NewMessageService() *MessageService {
	return &MessageService{templates: cannedTemplates}
}

// ListTemplates returns templates, optionally filtered by alert type
func (s *MessageService) ListTemplates(alertType string) []MessageTemplate {
	if alertType == "" {
		return s.templates
	}

	wanted := enum.AlertType(strings.ToUpper(alertType))
	filtered := make([]MessageTemplate, 0)
	for _, tmpl := range s.templates {
		if tmpl.Type == wanted {
			filtered = append(filtered, tmpl)
		}
	}
	return filtered
}

// Personalize substitutes {key} placeholders in the template with the
// given values. When a phone number is provided the result also
// carries a ready-to-open WhatsApp link.
func (s *MessageService) Personalize(template string, variables map[string]string, phone string) *PersonalizedMessage {
	message := template
	for key, value := range variables {
		message = strings.ReplaceAll(message, "{"+key+"}", value)
	}

	result := &PersonalizedMessage{Message: message}
	if phone != "" {
		result.WhatsAppLink = whatsapp.BuildLink(phone, message)
	}
	return result
}

var cannedTemplates = []MessageTemplate{
	{
		Type:      enum.AlertTypeBirthday,
		Title:     "Parabéns - Simples",
		Template:  "Olá {nome}! 🎂\n\nParabéns pelo seu aniversário! 🎉\nDesejamos um dia incrível e cheio de realizações!\n\nAproveite nosso presente especial: {desconto}% OFF em qualquer produto!\n\nAtenciosamente,\n{vendedor}",
		Variables: []string{"nome", "desconto", "vendedor"},
	},
	{
		Type:      enum.AlertTypeBirthday,
		Title:     "Parabéns - Com Cupom",
		Template:  "Feliz Aniversário, {nome}! 🎂🎁\n\nEste é um dia especial e queremos comemorar com você!\n\nSeu presente: Cupom {cupom} para {desconto}% de desconto válido até {dataValidade}.\n\nConte conosco!\n{vendedor}",
		Variables: []string{"nome", "cupom", "desconto", "dataValidade", "vendedor"},
	},
	{
		Type:      enum.AlertTypeInactiveCustomer,
		Title:     "Saudades - 30 dias",
		Template:  "Olá {nome}!\n\nNotamos que você não passa por aqui há um tempinho... Sentimos sua falta! 😊\n\nTemos novidades e produtos que você vai adorar.\n\nQue tal dar uma olhadinha? Estou à disposição!\n\n{vendedor}",
		Variables: []string{"nome", "vendedor"},
	},
	{
		Type:      enum.AlertTypeInactiveCustomer,
		Title:     "Retorno - 60 dias",
		Template:  "Oi {nome}! 👋\n\nFaz tempo que não conversamos!\n\nTenho umas novidades incríveis para te mostrar. Posso te enviar o catálogo atualizado?\n\nVamos matar a saudade? 😊\n\n{vendedor}",
		Variables: []string{"nome", "vendedor"},
	},
	{
		Type:      enum.AlertTypeInactiveCustomer,
		Title:     "Oferta Especial - 90 dias",
		Template:  "Olá {nome}!\n\nQue saudade! 💙\n\nPreparamos uma oferta EXCLUSIVA pensando em você:\n{oferta}\n\nVocê tem até {dataValidade} para aproveitar!\n\nVamos conversar?\n\n{vendedor}",
		Variables: []string{"nome", "oferta", "dataValidade", "vendedor"},
	},
	{
		Type:      enum.AlertTypeOpenQuote,
		Title:     "Lembrete - 3 dias",
		Template:  "Oi {nome}!\n\nTudo bem? 😊\n\nPassei aqui para saber se você teve tempo de olhar o orçamento que enviei.\n\nFicou com alguma dúvida? Estou aqui para ajudar!\n\n{vendedor}",
		Variables: []string{"nome", "vendedor"},
	},
	{
		Type:      enum.AlertTypeOpenQuote,
		Title:     "Follow-up - 7 dias",
		Template:  "Olá {nome}!\n\nVi que você demonstrou interesse em {produto}.\n\nAinda está pensando? Posso esclarecer alguma dúvida ou fazer algum ajuste no orçamento?\n\nEstou à disposição! 💬\n\n{vendedor}",
		Variables: []string{"nome", "produto", "vendedor"},
	},
	{
		Type:      enum.AlertTypeOpenQuote,
		Title:     "Última Chance - 15 dias",
		Template:  "Oi {nome}!\n\nSeu orçamento de {produto} está prestes a vencer.\n\nConsegui uma condição especial para você fechar hoje: {condicao}\n\nO que acha? Vamos fechar? 😊\n\n{vendedor}",
		Variables: []string{"nome", "produto", "condicao", "vendedor"},
	},
	{
		Type:      enum.AlertTypeFollowup,
		Title:     "Pós-venda",
		Template:  "Olá {nome}!\n\nEspero que esteja gostando do seu {produto}! 😊\n\nSe precisar de qualquer coisa, é só chamar!\n\nObrigado pela confiança!\n\n{vendedor}",
		Variables: []string{"nome", "produto", "vendedor"},
	},
	{
		Type:      enum.AlertTypeFollowup,
		Title:     "Produtos Complementares",
		Template:  "Oi {nome}!\n\nVi que você comprou {produtoComprado}.\n\nQueria te mostrar {produtoComplementar} que combina perfeitamente!\n\nPosso te enviar mais informações?\n\n{vendedor}",
		Variables: []string{"nome", "produtoComprado", "produtoComplementar", "vendedor"},
	},
}

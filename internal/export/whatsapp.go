package export

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/gpereira/lens/internal/analysis"
)

const (
	waBaseURL          = "https://wa.me/"
	defaultCompanyName = "Lens"
	fieldPlaceholder   = "___"
)

// Interview carries the outreach details supplied by the recruiter. Any
// blank scheduling field falls back to a placeholder token in the message.
type Interview struct {
	Company  string
	Date     string
	Time     string
	Location string
}

var nonDigits = regexp.MustCompile(`\D`)

// DraftMessage composes the WhatsApp status message for the candidate. A NO
// verdict produces a rejection notice referencing the role; anything else
// produces an interview scheduling request asking for confirmation.
func DraftMessage(r analysis.Result, details Interview) string {
	company := strings.TrimSpace(details.Company)
	if company == "" {
		company = defaultCompanyName
	}

	if r.Verdict == analysis.VerdictNo {
		return fmt.Sprintf(
			"Olá %s, aqui é da empresa %s. Infelizmente não seguiremos com seu perfil no momento.\n\n"+
				"Agradecemos seu interesse na vaga de %s. Manteremos seu currículo em nosso banco de talentos para futuras oportunidades.",
			r.Name, company, r.Role,
		)
	}

	return fmt.Sprintf(
		"Olá %s, aqui é da empresa %s. Seu currículo foi aprovado para a próxima etapa!\n\n"+
			"Gostaríamos de agendar uma entrevista:\n"+
			"📅 Data: %s\n"+
			"🕒 Hora: %s\n"+
			"📍 Local: %s\n\n"+
			"Por favor, confirme se você pode comparecer.",
		r.Name, company,
		orPlaceholder(details.Date),
		orPlaceholder(details.Time),
		orPlaceholder(details.Location),
	)
}

// WhatsAppLink builds the wa.me deep link for the drafted message. The
// recipient is the caller-supplied phone stripped to digits; no format
// validation happens here, a malformed number simply yields a link WhatsApp
// will reject.
func WhatsAppLink(r analysis.Result, phone string, details Interview) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	message := DraftMessage(r, details)
	return waBaseURL + digits + "?text=" + url.QueryEscape(message)
}

func orPlaceholder(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return fieldPlaceholder
	}
	return s
}

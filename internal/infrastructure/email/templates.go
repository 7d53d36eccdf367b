package email

import (
	"bytes"
	"html/template"

	"apen/internal/domain/contact"
	"apen/internal/shared/i18n"
)

// Design system colors of the site, kept identical across both documents.
const (
	colorPrimary    = "#12ACA4"
	colorSecondary  = "#17383F"
	colorBackground = "#F4F7F6"
	colorWhite      = "#FFFFFF"
	colorText       = "#333333"
	colorTextLight  = "#666666"
	colorBorder     = "#E0E0E0"
)

// Renderer builds the two email-client-safe HTML documents derived from a
// submission. All user-supplied values pass through html/template, so
// markup in form input cannot be injected into the documents.
type Renderer struct {
	client   *template.Template
	provider *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		client:   template.Must(template.New("client").Parse(clientTemplate)),
		provider: template.Must(template.New("provider").Parse(providerTemplate)),
	}
}

type clientLabels struct {
	Tagline         string
	Greeting        string
	ThankYou        string
	Received        string
	RequestDetails  string
	Service         string
	PreferredDate   string
	PreferredTime   string
	Message         string
	Questions       string
	Regards         string
	Team            string
	PhoneLabel      string
	Confidentiality string
}

var clientLabelsByLanguage = map[i18n.Language]clientLabels{
	i18n.LanguageES: {
		Tagline:        "AUDITORES Y CONSULTORES",
		Greeting:       "Estimado/a",
		ThankYou:       "Gracias por contactar a Apen y Asociados",
		Received:       "Hemos recibido su solicitud de cita y un miembro de nuestro equipo se pondrá en contacto con usted a la brevedad para confirmar los detalles.",
		RequestDetails: "DETALLES DE SU SOLICITUD",
		Service:        "SERVICIO",
		PreferredDate:  "FECHA PREFERIDA",
		PreferredTime:  "HORA PREFERIDA",
		Message:        "MENSAJE",
		Questions:      "Si tiene alguna pregunta antes de nuestra llamada, no dude en responder a este correo.",
		Regards:        "Atentamente",
		Team:           "El Equipo de Apen y Asociados",
		PhoneLabel:     "Teléfono",
		Confidentiality: "AVISO DE CONFIDENCIALIDAD: Este correo electrónico y cualquier archivo adjunto son confidenciales y están destinados únicamente para el uso del destinatario. " +
			"Si ha recibido este mensaje por error, por favor notifique al remitente y elimínelo de su sistema.",
	},
	i18n.LanguageEN: {
		Tagline:        "AUDITORS & CONSULTANTS",
		Greeting:       "Dear",
		ThankYou:       "Thank you for contacting Apen y Asociados",
		Received:       "We have received your appointment request and a member of our team will contact you shortly to confirm the details.",
		RequestDetails: "YOUR REQUEST DETAILS",
		Service:        "SERVICE",
		PreferredDate:  "PREFERRED DATE",
		PreferredTime:  "PREFERRED TIME",
		Message:        "MESSAGE",
		Questions:      "If you have any questions before our call, please don't hesitate to reply to this email.",
		Regards:        "Best regards",
		Team:           "The Apen y Asociados Team",
		PhoneLabel:     "Phone",
		Confidentiality: "CONFIDENTIALITY NOTICE: This email and any attachments are confidential and intended solely for the use of the addressee. " +
			"If you have received this message in error, please notify the sender and delete it from your system.",
	},
}

type clientData struct {
	Lang          string
	Name          string
	Service       string
	FormattedDate string
	FormattedTime string
	Message       string
	L             clientLabels
	C             colorSet
}

type providerData struct {
	Name          string
	Email         string
	Phone         string
	Service       string
	FormattedDate string
	FormattedTime string
	Message       string
	LanguageBadge string
	C             colorSet
}

type colorSet struct {
	Primary    string
	Secondary  string
	Background string
	White      string
	Text       string
	TextLight  string
	Border     string
}

var colors = colorSet{
	Primary:    colorPrimary,
	Secondary:  colorSecondary,
	Background: colorBackground,
	White:      colorWhite,
	Text:       colorText,
	TextLight:  colorTextLight,
	Border:     colorBorder,
}

// ClientConfirmation renders the confirmation document sent to the
// submitter, fully localized to the submission's language.
func (r *Renderer) ClientConfirmation(s *contact.Submission) (string, error) {
	lang := s.Language()
	data := clientData{
		Lang:          lang.String(),
		Name:          s.Name(),
		Service:       s.Service(),
		FormattedDate: s.FormattedDate(),
		FormattedTime: s.FormattedTime(),
		Message:       s.Message(),
		L:             clientLabelsByLanguage[lang],
		C:             colors,
	}

	var buf bytes.Buffer
	if err := r.client.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ProviderNotification renders the internal notification for the firm.
// The document is always Spanish; only the badge reflects the submitter's
// language, and the date keeps the submitter's localization so the firm
// sees exactly what the client confirmed.
func (r *Renderer) ProviderNotification(s *contact.Submission) (string, error) {
	badge := "Español"
	if !s.Language().IsSpanish() {
		badge = "English"
	}

	data := providerData{
		Name:          s.Name(),
		Email:         s.Email(),
		Phone:         s.Phone(),
		Service:       s.Service(),
		FormattedDate: s.FormattedDate(),
		FormattedTime: s.FormattedTime(),
		Message:       s.Message(),
		LanguageBadge: badge,
		C:             colors,
	}

	var buf bytes.Buffer
	if err := r.provider.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const clientTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.L.ThankYou}}</title>
</head>
<body style="margin: 0; padding: 0; background-color: {{.C.Background}}; font-family: Arial, sans-serif;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="background-color: {{.C.Background}};">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="600" cellspacing="0" cellpadding="0" border="0" style="max-width: 600px; width: 100%; background-color: {{.C.White}}; border: 1px solid {{.C.Border}}; border-radius: 8px; overflow: hidden;">
          <tr>
            <td style="background-color: {{.C.Secondary}}; padding: 30px 40px; text-align: center;">
              <img src="https://apenyasociados.com/logo-white.png" alt="Apen y Asociados" height="60" style="height: 60px; width: auto; max-width: 200px;" />
              <p style="color: {{.C.Primary}}; font-size: 14px; margin: 10px 0 0 0; letter-spacing: 1px;">{{.L.Tagline}}</p>
            </td>
          </tr>
          <tr>
            <td style="padding: 40px;">
              <p style="color: {{.C.Text}}; font-size: 16px; margin: 0 0 20px 0; line-height: 1.6;">
                {{.L.Greeting}} <strong>{{.Name}}</strong>,
              </p>
              <h1 style="color: {{.C.Secondary}}; font-size: 22px; margin: 0 0 15px 0; font-weight: 600;">{{.L.ThankYou}}</h1>
              <p style="color: {{.C.TextLight}}; font-size: 15px; margin: 0 0 30px 0; line-height: 1.7;">{{.L.Received}}</p>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="background-color: {{.C.Background}}; border-radius: 6px; border-left: 4px solid {{.C.Primary}};">
                <tr>
                  <td style="padding: 25px;">
                    <h2 style="color: {{.C.Secondary}}; font-size: 14px; margin: 0 0 20px 0; font-weight: 600; letter-spacing: 0.5px;">{{.L.RequestDetails}}</h2>
                    <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0">
                      <tr>
                        <td style="padding: 8px 0; vertical-align: top; width: 40%;">
                          <span style="color: {{.C.Primary}}; font-size: 12px; font-weight: 600;">{{.L.Service}}:</span>
                        </td>
                        <td style="padding: 8px 0; vertical-align: top;">
                          <span style="color: {{.C.Text}}; font-size: 15px;">{{.Service}}</span>
                        </td>
                      </tr>
                      <tr>
                        <td style="padding: 8px 0; vertical-align: top;">
                          <span style="color: {{.C.Primary}}; font-size: 12px; font-weight: 600;">{{.L.PreferredDate}}:</span>
                        </td>
                        <td style="padding: 8px 0; vertical-align: top;">
                          <span style="color: {{.C.Text}}; font-size: 15px;">{{.FormattedDate}}</span>
                        </td>
                      </tr>
                      <tr>
                        <td style="padding: 8px 0; vertical-align: top;">
                          <span style="color: {{.C.Primary}}; font-size: 12px; font-weight: 600;">{{.L.PreferredTime}}:</span>
                        </td>
                        <td style="padding: 8px 0; vertical-align: top;">
                          <span style="color: {{.C.Text}}; font-size: 15px;">{{.FormattedTime}}</span>
                        </td>
                      </tr>
                      {{if .Message}}
                      <tr>
                        <td style="padding: 8px 0; vertical-align: top;">
                          <span style="color: {{.C.Primary}}; font-size: 12px; font-weight: 600;">{{.L.Message}}:</span>
                        </td>
                        <td style="padding: 8px 0; vertical-align: top;">
                          <span style="color: {{.C.Text}}; font-size: 15px;">{{.Message}}</span>
                        </td>
                      </tr>
                      {{end}}
                    </table>
                  </td>
                </tr>
              </table>
              <p style="color: {{.C.TextLight}}; font-size: 14px; margin: 30px 0 0 0; line-height: 1.6;">{{.L.Questions}}</p>
              <p style="color: {{.C.Text}}; font-size: 15px; margin: 30px 0 0 0; line-height: 1.6;">
                {{.L.Regards}},<br/>
                <strong style="color: {{.C.Secondary}};">{{.L.Team}}</strong>
              </p>
            </td>
          </tr>
          <tr>
            <td style="background-color: {{.C.Secondary}}; padding: 25px 40px;">
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0">
                <tr>
                  <td align="center">
                    <p style="color: {{.C.Primary}}; font-size: 16px; font-weight: 600; margin: 0 0 5px 0;">Apen y Asociados</p>
                    <p style="color: {{.C.White}}; font-size: 13px; margin: 0; opacity: 0.9;">{{.L.PhoneLabel}}: 4386 5000 | info@apenyasociados.com</p>
                    <p style="color: {{.C.White}}; font-size: 12px; margin: 8px 0 0 0; opacity: 0.7;">Edificio Campus Tecnológico - TEC, Torre I, Cdad. de Guatemala</p>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding: 20px 30px; background-color: {{.C.Background}};">
              <p style="color: #999999; font-size: 10px; margin: 0; line-height: 1.5; text-align: justify;">{{.L.Confidentiality}}</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`

const providerTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Nueva Solicitud de Cita</title>
</head>
<body style="margin: 0; padding: 0; background-color: {{.C.Background}}; font-family: Arial, sans-serif;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" style="background-color: {{.C.Background}};">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="600" cellspacing="0" cellpadding="0" border="0" style="max-width: 600px; width: 100%; background-color: {{.C.White}}; border: 1px solid {{.C.Border}}; border-radius: 8px; overflow: hidden;">
          <tr>
            <td style="background-color: {{.C.Primary}}; padding: 25px 40px;">
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0">
                <tr>
                  <td>
                    <h1 style="color: {{.C.White}}; font-size: 20px; margin: 0; font-weight: 600;">Nueva Solicitud de Cita</h1>
                    <p style="color: {{.C.White}}; font-size: 13px; margin: 5px 0 0 0; opacity: 0.9;">Recibida desde apenyasociados.com</p>
                  </td>
                  <td align="right" style="vertical-align: middle;">
                    <span style="background-color: {{.C.White}}; color: {{.C.Primary}}; font-size: 11px; font-weight: 600; padding: 5px 12px; border-radius: 20px; text-transform: uppercase;">{{.LanguageBadge}}</span>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding: 30px 40px 0 40px;">
              <h2 style="color: {{.C.Secondary}}; font-size: 14px; margin: 0 0 15px 0; font-weight: 600; text-transform: uppercase; letter-spacing: 1px; border-bottom: 2px solid {{.C.Primary}}; padding-bottom: 10px;">INFORMACIÓN DEL CLIENTE</h2>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0">
                <tr>
                  <td style="padding: 12px 0; border-bottom: 1px solid {{.C.Border}};">
                    <span style="color: {{.C.Primary}}; font-size: 12px; font-weight: 600; text-transform: uppercase; display: block; margin-bottom: 4px;">NOMBRE</span>
                    <span style="color: {{.C.Text}}; font-size: 16px; font-weight: 600;">{{.Name}}</span>
                  </td>
                </tr>
                <tr>
                  <td style="padding: 12px 0; border-bottom: 1px solid {{.C.Border}};">
                    <span style="color: {{.C.Primary}}; font-size: 12px; font-weight: 600; text-transform: uppercase; display: block; margin-bottom: 4px;">EMAIL</span>
                    <a href="mailto:{{.Email}}" style="color: {{.C.Secondary}}; font-size: 15px; text-decoration: none;">{{.Email}}</a>
                  </td>
                </tr>
                <tr>
                  <td style="padding: 12px 0; border-bottom: 1px solid {{.C.Border}};">
                    <span style="color: {{.C.Primary}}; font-size: 12px; font-weight: 600; text-transform: uppercase; display: block; margin-bottom: 4px;">TELÉFONO</span>
                    <a href="tel:{{.Phone}}" style="color: {{.C.Secondary}}; font-size: 15px; text-decoration: none;">{{.Phone}}</a>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding: 30px 40px 0 40px;">
              <h2 style="color: {{.C.Secondary}}; font-size: 14px; margin: 0 0 15px 0; font-weight: 600; text-transform: uppercase; letter-spacing: 1px; border-bottom: 2px solid {{.C.Primary}}; padding-bottom: 10px;">DETALLES DE LA CITA</h2>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0">
                <tr>
                  <td style="padding: 12px 0; border-bottom: 1px solid {{.C.Border}};">
                    <span style="color: {{.C.Primary}}; font-size: 12px; font-weight: 600; text-transform: uppercase; display: block; margin-bottom: 4px;">SERVICIO SOLICITADO</span>
                    <span style="color: {{.C.Text}}; font-size: 15px; font-weight: 600;">{{.Service}}</span>
                  </td>
                </tr>
                <tr>
                  <td style="padding: 12px 0; border-bottom: 1px solid {{.C.Border}};">
                    <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0">
                      <tr>
                        <td width="50%">
                          <span style="color: {{.C.Primary}}; font-size: 12px; font-weight: 600; text-transform: uppercase; display: block; margin-bottom: 4px;">FECHA PREFERIDA</span>
                          <span style="color: {{.C.Text}}; font-size: 15px;">{{.FormattedDate}}</span>
                        </td>
                        <td width="50%">
                          <span style="color: {{.C.Primary}}; font-size: 12px; font-weight: 600; text-transform: uppercase; display: block; margin-bottom: 4px;">HORA PREFERIDA</span>
                          <span style="color: {{.C.Text}}; font-size: 15px;">{{.FormattedTime}}</span>
                        </td>
                      </tr>
                    </table>
                  </td>
                </tr>
                {{if .Message}}
                <tr>
                  <td style="padding: 12px 0; border-bottom: 1px solid {{.C.Border}};">
                    <span style="color: {{.C.Primary}}; font-size: 12px; font-weight: 600; text-transform: uppercase; display: block; margin-bottom: 4px;">MENSAJE DEL CLIENTE</span>
                    <p style="color: {{.C.Text}}; font-size: 14px; margin: 0; line-height: 1.6; background-color: {{.C.Background}}; padding: 12px; border-radius: 4px;">{{.Message}}</p>
                  </td>
                </tr>
                {{end}}
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding: 30px 40px;">
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0">
                <tr>
                  <td align="center">
                    <a href="mailto:{{.Email}}?subject=Re: Solicitud de Cita - Apen y Asociados" style="display: inline-block; background-color: {{.C.Primary}}; color: {{.C.White}}; font-size: 14px; font-weight: 600; text-decoration: none; padding: 14px 30px; border-radius: 6px;">Responder al Cliente</a>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="background-color: {{.C.Secondary}}; padding: 20px 40px;">
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0">
                <tr>
                  <td align="center">
                    <p style="color: {{.C.Primary}}; font-size: 14px; font-weight: 600; margin: 0;">Apen y Asociados</p>
                    <p style="color: {{.C.White}}; font-size: 11px; margin: 8px 0 0 0; opacity: 0.7;">Este correo fue generado automáticamente desde el formulario de contacto</p>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding: 15px 30px; background-color: {{.C.Background}};">
              <p style="color: #999999; font-size: 10px; margin: 0; line-height: 1.5; text-align: center;">AVISO DE CONFIDENCIALIDAD: Este correo electrónico contiene información confidencial del cliente.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`

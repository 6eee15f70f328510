package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"gestionemb_backend/internals/configs"
)

// Mailer envía correos transaccionales. Todos los envíos son fire-and-forget:
// un fallo se registra en el canal operacional y jamás aborta la acción
// que lo disparó.
type Mailer struct {
	cfg configs.AppConfig
}

func New(cfg configs.AppConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendAsync dispara el envío en background.
func (m *Mailer) SendAsync(to, subject, body string) {
	go func() {
		if err := m.send(to, subject, body); err != nil {
			log.Printf("[WARN] envío de correo a %s falló: %v", to, err)
		}
	}()
}

func (m *Mailer) send(to, subject, body string) error {
	if m.cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST no configurado")
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		m.cfg.SMTPFrom, to, subject, body,
	))

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	var auth smtp.Auth
	if m.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	}
	return smtp.SendMail(addr, auth, m.cfg.SMTPFrom, []string{to}, msg)
}

// BienvenidaUsuario: notificación al crear una cuenta.
func (m *Mailer) BienvenidaUsuario(to, nombre string) {
	m.SendAsync(to,
		"Bienvenido a GestionEMB",
		fmt.Sprintf("Hola %s,\n\nTu cuenta en GestionEMB ha sido creada.\n", nombre),
	)
}

// CuentaActualizada: notificación al editar datos de la cuenta.
func (m *Mailer) CuentaActualizada(to, nombre string) {
	m.SendAsync(to,
		"Tu cuenta en GestionEMB fue actualizada",
		fmt.Sprintf("Hola %s,\n\nLos datos de tu cuenta fueron actualizados.\n", nombre),
	)
}

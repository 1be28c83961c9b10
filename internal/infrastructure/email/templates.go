package email

import (
	"fmt"
	"strings"

	"github.com/polyforma/qualitrack/internal/domain/notification"
	"github.com/polyforma/qualitrack/internal/shared/locale"
)

func alertBody(f *locale.Formatter, to notification.Recipient, s notification.AlertSummary, baseURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s,\n\n", to.Name)
	fmt.Fprintf(&b, "La inspección del lote **%s** de **%s** superó el umbral de merma.\n\n", s.LotNumber, s.ProductName)
	b.WriteString("| Dato | Valor |\n|---|---|\n")
	fmt.Fprintf(&b, "| Merma registrada | %s |\n", f.Percent(s.ActualValue))
	fmt.Fprintf(&b, "| Umbral | %s |\n", f.Percent(s.Threshold))
	fmt.Fprintf(&b, "| Fecha de producción | %s |\n", f.Date(s.ProductionDate))
	fmt.Fprintf(&b, "| Control de calidad | #%d |\n", s.QualityControlID)
	fmt.Fprintf(&b, "| Alerta | #%d |\n\n", s.AlertID)
	if baseURL != "" {
		fmt.Fprintf(&b, "[Revisar alerta](%s/api/v1/alerts/%d)\n\n", strings.TrimRight(baseURL, "/"), s.AlertID)
	}
	b.WriteString("Este mensaje se generó automáticamente.\n")
	return b.String()
}

func certificateBody(f *locale.Formatter, to notification.Recipient, s notification.CertificateSummary, baseURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s,\n\n", to.Name)
	fmt.Fprintf(&b, "El certificado de calidad **%s** del lote **%s** (%s) fue aprobado el %s.\n\n",
		s.Code, s.LotNumber, s.ProductName, f.Date(s.ApprovedAt))
	if baseURL != "" {
		fmt.Fprintf(&b, "[Descargar certificado](%s/api/v1/certificates/%d/download)\n\n", strings.TrimRight(baseURL, "/"), s.CertificateID)
	}
	b.WriteString("Este mensaje se generó automáticamente.\n")
	return b.String()
}

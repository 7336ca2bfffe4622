package console

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/message"

	"nomina/internal/domain/payroll"
	"nomina/internal/domain/roster"
)

const (
	tableRowFormat    = "%-3d %-25s %12.2f %10.2f %10.2f %12.2f\n"
	tableHeaderFormat = "%-3s %-25s %12s %10s %10s %12s\n"
	tableTotalFormat  = "%-3s %-25s %12.2f %10.2f %10.2f %12.2f\n"
	tableWidth        = 78
)

// renderer formats amounts to two decimals at display time only.
type renderer struct {
	out      io.Writer
	printer  *message.Printer
	currency string
}

func (r *renderer) amount(value float64) string {
	return r.printer.Sprintf("%.2f", value)
}

func (r *renderer) line(text string) {
	fmt.Fprintln(r.out, text)
}

func (r *renderer) menu() {
	r.line("===========================================")
	r.line("     CALCULADORA DE SALARIOS - MENU")
	r.line("===========================================")
	r.line("[1] Ingresar trabajador y calcular")
	r.line("[2] Mostrar todos los trabajadores registrados")
	r.line("[3] Eliminar todos los datos (reiniciar)")
	r.line("[4] Salir")
	fmt.Fprint(r.out, "Seleccione una opción: ")
}

func (r *renderer) result(record payroll.WorkerRecord) {
	r.line("\n---------- RESULTADO ----------")
	fmt.Fprintf(r.out, "Empleado: %s\n", record.Name)
	fmt.Fprintf(r.out, "INSS (7%%): %s %s\n", r.currency, r.amount(record.SocialSecurity))
	fmt.Fprintf(r.out, "IR Mensual: %s %s\n", r.currency, r.amount(record.MonthlyIncomeTax))
	fmt.Fprintf(r.out, "Total Deducción: %s %s\n", r.currency, r.amount(record.TotalDeduction))
	fmt.Fprintf(r.out, "Salario Neto: %s %s\n", r.currency, r.amount(record.NetSalary))
	r.line("-------------------------------")
}

func (r *renderer) table(records []payroll.WorkerRecord, summary roster.Summary) {
	if len(records) == 0 {
		r.line("\nNo hay trabajadores registrados todavía.")
		return
	}
	r.line("\n===== LISTA DE TRABAJADORES REGISTRADOS =====")
	fmt.Fprint(r.out, r.printer.Sprintf(tableHeaderFormat, "N", "Nombre", "Bruto", "INSS", "IR", "Neto"))
	r.line(strings.Repeat("-", tableWidth))
	for i, rec := range records {
		fmt.Fprint(r.out, r.printer.Sprintf(tableRowFormat,
			i+1, rec.Name, rec.GrossSalary, rec.SocialSecurity, rec.MonthlyIncomeTax, rec.NetSalary))
	}
	r.line(strings.Repeat("-", tableWidth))
	fmt.Fprint(r.out, r.printer.Sprintf(tableTotalFormat,
		"", "TOTAL", summary.TotalGross, summary.TotalINSS, summary.TotalIncomeTax, summary.TotalNet))
	r.line("==============================================")
}

func (r *renderer) blankLines(n int) {
	fmt.Fprint(r.out, strings.Repeat("\n", n))
}

package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"comercial_moveis/internal/domain/budget"
	"comercial_moveis/internal/format"
)

const SheetName = "Orçamento"

// XLSXView renders a quote spreadsheet: client block, environments, payment
// plan and totals. Money cells are numeric with a currency number format.
type XLSXView struct {
	Locale format.Locale
	Now    func() time.Time
}

var _ budget.View = XLSXView{}

func NewXLSXView(l format.Locale) XLSXView {
	return XLSXView{Locale: l, Now: time.Now}
}

func (XLSXView) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXView) FileExtension() string { return "xlsx" }

type sheetStyles struct {
	title, header, money, percent int
}

func (v XLSXView) Render(w io.Writer, s budget.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	styles, err := v.styles(f)
	if err != nil {
		return err
	}

	r := &sheetWriter{f: f, row: 1}
	r.cell("A", "Comercial Móveis - Orçamento", styles.title)
	r.next()
	r.cell("A", "Data", 0)
	r.cell("B", v.Locale.FormatDate(v.now()), 0)
	r.skip()

	r.cell("A", "Cliente", styles.header)
	r.next()
	for _, line := range [][2]string{
		{"Nome", s.Client.DisplayName()},
		{"Documento", s.Client.DisplayDocument()},
		{"E-mail", s.Client.DisplayEmail()},
		{"Telefone", s.Client.DisplayPhone()},
		{"Endereço", s.Client.DisplayAddress()},
	} {
		r.cell("A", line[0], 0)
		r.cell("B", line[1], 0)
		r.next()
	}
	r.next()

	r.headers(styles.header, "Ambiente", "Descrição", "Valor")
	for _, e := range s.Environments {
		r.cell("A", e.Name, 0)
		r.cell("B", e.Description, 0)
		r.cell("C", e.Amount.InexactFloat64(), styles.money)
		r.next()
	}
	r.cell("B", "Valor total", styles.header)
	r.cell("C", s.Total.InexactFloat64(), styles.money)
	r.skip()

	r.headers(styles.header, "Forma de pagamento", "Descrição", "Parcelas", "Vencimento", "Valor", "Valor presente")
	for _, p := range s.PaymentMethods {
		r.cell("A", string(p.Type), 0)
		r.cell("B", p.Description, 0)
		r.cell("C", max(p.Installments, 1), 0)
		r.cell("D", v.Locale.FormatDate(p.FirstDueDate), 0)
		r.cell("E", p.Amount.InexactFloat64(), styles.money)
		r.cell("F", p.EffectivePresentValue().InexactFloat64(), styles.money)
		r.next()
	}
	r.cell("D", "Total", styles.header)
	r.cell("E", s.PaymentsTotal.InexactFloat64(), styles.money)
	r.cell("F", s.PresentValueTotal.InexactFloat64(), styles.money)
	r.skip()

	r.cell("A", "Resumo", styles.header)
	r.next()
	r.labeled("Desconto", s.DiscountPercent.InexactFloat64()/100, styles.percent)
	r.labeled("Valor do desconto", s.DiscountAmount.InexactFloat64(), styles.money)
	r.labeled("Valor negociado", s.Negotiated.InexactFloat64(), styles.money)
	r.labeled("Valor restante", s.Remaining.InexactFloat64(), styles.money)
	r.labeled("Conciliado", yesNo(s.Reconciled), 0)

	if r.err != nil {
		return fmt.Errorf("writing cells: %w", r.err)
	}
	if err := f.SetColWidth(SheetName, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", "F", 18); err != nil {
		return err
	}
	return f.Write(w)
}

func (v XLSXView) now() time.Time {
	if v.Now == nil {
		return time.Now()
	}
	return v.Now()
}

func (v XLSXView) styles(f *excelize.File) (sheetStyles, error) {
	var st sheetStyles
	var err error
	if st.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		return st, fmt.Errorf("creating title style: %w", err)
	}
	if st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	}); err != nil {
		return st, fmt.Errorf("creating header style: %w", err)
	}
	moneyFmt := v.moneyNumFmt()
	if st.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt}); err != nil {
		return st, fmt.Errorf("creating money style: %w", err)
	}
	percentFmt := "0.0%"
	if st.percent, err = f.NewStyle(&excelize.Style{CustomNumFmt: &percentFmt}); err != nil {
		return st, fmt.Errorf("creating percent style: %w", err)
	}
	return st, nil
}

// moneyNumFmt uses Excel's neutral separators; the spreadsheet application
// applies the reader's locale.
func (v XLSXView) moneyNumFmt() string {
	symbol := strings.ReplaceAll(v.Locale.CurrencySymbol, `"`, "")
	if symbol == "" {
		return "#,##0.00"
	}
	return fmt.Sprintf(`"%s" #,##0.00;-"%s" #,##0.00`, symbol, symbol)
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// sheetWriter writes row by row and keeps the first error.
type sheetWriter struct {
	f   *excelize.File
	row int
	err error
}

func (w *sheetWriter) cell(col string, value any, style int) {
	if w.err != nil {
		return
	}
	ref := fmt.Sprintf("%s%d", col, w.row)
	if w.err = w.f.SetCellValue(SheetName, ref, value); w.err != nil {
		return
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(SheetName, ref, ref, style)
	}
}

func (w *sheetWriter) headers(style int, titles ...string) {
	for i, title := range titles {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			w.err = err
			return
		}
		w.cell(col, title, style)
	}
	w.next()
}

func (w *sheetWriter) labeled(label string, value any, style int) {
	w.cell("A", label, 0)
	w.cell("B", value, style)
	w.next()
}

func (w *sheetWriter) next() { w.row++ }

func (w *sheetWriter) skip() { w.row += 2 }

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/model"
)

// utf8BOM keeps Excel from misreading accented characters.
const utf8BOM = "\uFEFF"

// VendasCSV serializes sales as a semicolon-separated extract with a UTF-8 BOM.
func VendasCSV(vendas []model.Venda) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	header := []string{"ID", "Data/Hora", "Itens", "Subtotal", "Desconto", "Total", "Forma Pagamento", "Status"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range vendas {
		v := &vendas[i]
		itens := make([]string, 0, len(v.Itens))
		for _, item := range v.Itens {
			itens = append(itens, fmt.Sprintf("%s(%d)", item.Nome, item.Quantidade))
		}
		record := []string{
			v.ID.String(),
			v.Data.Format("02/01/2006 15:04:05"),
			strings.Join(itens, ", "),
			v.Subtotal.StringFixed(2),
			v.Desconto.StringFixed(2),
			v.Total.StringFixed(2),
			v.FormaPagamento,
			v.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FiltrarPeriodo selects the sales of a day, the Sunday-to-Saturday week or
// the calendar month containing ref.
func FiltrarPeriodo(vendas []model.Venda, tipo string, ref time.Time) []model.Venda {
	result := []model.Venda{}
	for i := range vendas {
		v := &vendas[i]
		switch tipo {
		case "semana":
			inicio := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).
				AddDate(0, 0, -int(ref.Weekday()))
			fim := inicio.AddDate(0, 0, 7)
			if !v.Data.Before(inicio) && v.Data.Before(fim) {
				result = append(result, *v)
			}
		case "mes":
			if v.Data.Year() == ref.Year() && v.Data.Month() == ref.Month() {
				result = append(result, *v)
			}
		default: // dia
			if v.Data.Format("2006-01-02") == ref.Format("2006-01-02") {
				result = append(result, *v)
			}
		}
	}
	return result
}

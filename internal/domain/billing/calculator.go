package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/entity"
)

// Line es una línea de entrada al cálculo: producto ya resuelto + cantidad.
// El llamador es responsable de que el producto exista; aquí no se consulta nada.
type Line struct {
	Product  *entity.Product
	Quantity int
}

// Input agrupa las entradas del cálculo de una factura.
type Input struct {
	Lines         []Line
	TaxPercentage decimal.Decimal // 0..100
	ClientAddress string
	// AddressOverride reemplaza la dirección del cliente si no está vacío.
	AddressOverride string
}

// ResultLine es una línea calculada con el precio unitario congelado.
type ResultLine struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// Result montos calculados de la factura.
// Invariantes: Subtotal = Σ LineTotal; Total = Subtotal + TaxAmount.
type Result struct {
	Lines     []ResultLine
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	Address   string
}

var oneHundred = decimal.NewFromInt(100)

// Calculate computa línea por línea los montos de la factura con aritmética
// decimal de punto fijo. El redondeo ocurre una sola vez, al calcular el
// impuesto: Round(2) redondea mitades alejándose de cero, que para montos no
// negativos equivale a redondeo "half-up" a 2 decimales.
//
// El orden de las líneas se preserva en el resultado; no afecta la suma.
func Calculate(in Input) (*Result, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyItems
	}
	if in.TaxPercentage.IsNegative() || in.TaxPercentage.GreaterThan(oneHundred) {
		return nil, domain.ErrInvalidInput
	}

	res := &Result{
		Lines:    make([]ResultLine, 0, len(in.Lines)),
		Subtotal: decimal.Zero,
	}
	for _, line := range in.Lines {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		lineTotal := line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		res.Lines = append(res.Lines, ResultLine{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
			LineTotal:   lineTotal,
		})
		res.Subtotal = res.Subtotal.Add(lineTotal)
	}

	res.TaxAmount = res.Subtotal.Mul(in.TaxPercentage).Div(oneHundred).Round(2)
	res.Total = res.Subtotal.Add(res.TaxAmount)

	res.Address = in.ClientAddress
	if in.AddressOverride != "" {
		res.Address = in.AddressOverride
	}
	return res, nil
}

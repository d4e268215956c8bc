package sales_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Libreria-api/internal/domain/sales"
)

func TestNewInvoiceNumber_Formato(t *testing.T) {
	fecha := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	re := regexp.MustCompile(`^VEN-20260315-\d{4}$`)
	for i := 0; i < 50; i++ {
		num := sales.NewInvoiceNumber(fecha)
		assert.Regexp(t, re, num)
	}
}

func TestNewInvoiceNumber_CambiaConLaFecha(t *testing.T) {
	a := sales.NewInvoiceNumber(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	b := sales.NewInvoiceNumber(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, a, "20260101")
	assert.Contains(t, b, "20260102")
}

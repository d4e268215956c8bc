// Package sales contiene reglas de dominio de ventas puras (sin persistencia).
package sales

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// InvoicePrefix prefijo de toda factura de venta.
const InvoicePrefix = "VEN"

// NewInvoiceNumber genera un número de factura legible: VEN-AAAAMMDD-NNNN.
// El sufijo es aleatorio, así que una colisión es posible; el caso de uso la detecta
// como violación de unicidad y reintenta con un sufijo nuevo.
func NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", InvoicePrefix, now.Format("20060102"), rand.IntN(10000))
}

package billing_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllocator_SecuenciaOrdenada verifica que bajo creación secuencial los
// números salen consecutivos y estrictamente crecientes.
func TestAllocator_SecuenciaOrdenada(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		resp, err := uc.Create(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("INV-%04d", i), resp.InvoiceNo)
	}
}

// TestAllocator_Concurrente lanza 5 creaciones simultáneas: las 5 deben
// terminar bien, con 5 números distintos INV-0001..INV-0005 en algún orden.
func TestAllocator_Concurrente(t *testing.T) {
	uc, invoices := newUseCase(t)
	ctx := context.Background()

	const n = 5
	numbers := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := uc.Create(ctx, validRequest())
			assert.NoError(t, err, "toda creación concurrente debe terminar bien")
			if err == nil {
				numbers <- resp.InvoiceNo
			}
		}()
	}
	wg.Wait()
	close(numbers)

	got := make(map[string]bool)
	for no := range numbers {
		assert.False(t, got[no], "número duplicado: %s", no)
		got[no] = true
	}
	require.Len(t, got, n, "deben emitirse %d números distintos", n)
	for i := 1; i <= n; i++ {
		assert.True(t, got[fmt.Sprintf("INV-%04d", i)], "falta INV-%04d", i)
	}
	assert.Len(t, invoices.invoices, n)
}

// TestAllocator_ReintentoTrasCarrera simula una lectura desactualizada del
// máximo (otra instancia acaba de emitir INV-0001): el asignador debe
// reintentar de forma transparente y emitir INV-0002.
func TestAllocator_ReintentoTrasCarrera(t *testing.T) {
	uc, invoices := newUseCase(t)
	ctx := context.Background()

	// Primera factura ocupa INV-0001.
	_, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)

	// A partir de aquí MaxInvoiceSeq devuelve 0 (stale): el candidato
	// INV-0001 chocará con el constraint único.
	stale := int64(0)
	invoices.staleMaxSeq = &stale

	resp, err := uc.Create(ctx, validRequest())
	require.NoError(t, err, "el reintento debe ser invisible para el caller")
	assert.Equal(t, "INV-0002", resp.InvoiceNo)
}

// TestAllocator_FallbackTimestamp: con los 5 candidatos ocupados y el máximo
// siempre desactualizado, el asignador agota los reintentos y cae al sufijo
// derivado del reloj: avanza en lugar de fallar.
func TestAllocator_FallbackTimestamp(t *testing.T) {
	uc, invoices := newUseCase(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := uc.Create(ctx, validRequest())
		require.NoError(t, err)
	}
	stale := int64(0)
	invoices.staleMaxSeq = &stale

	resp, err := uc.Create(ctx, validRequest())
	require.NoError(t, err, "el agotamiento del asignador no debe fallar la petición")
	assert.True(t, strings.HasPrefix(resp.InvoiceNo, "INV-"), "el fallback conserva el prefijo")
	assert.NotRegexp(t, `^INV-\d{4}$`, resp.InvoiceNo, "el fallback no es un número secuencial de 4 dígitos")
}

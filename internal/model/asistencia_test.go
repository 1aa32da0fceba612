package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ahora = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestClasificarSesionFutura(t *testing.T) {
	futura := ahora.Add(time.Hour).Unix()

	assert.Equal(t, SesionFutura, ClasificarSesion(futura, 0, ahora))
	// Los registros no importan si la sesión aún no llega.
	assert.Equal(t, SesionFutura, ClasificarSesion(futura, 25, ahora))
}

func TestClasificarSesionExactamenteAhora(t *testing.T) {
	// La comparación es estricta: una sesión programada exactamente ahora no
	// es futura.
	justoAhora := ahora.Unix()

	assert.Equal(t, SesionCompletada, ClasificarSesion(justoAhora, 1, ahora))
	assert.Equal(t, SesionPendiente, ClasificarSesion(justoAhora, 0, ahora))
}

func TestClasificarSesionPasadaSinRegistros(t *testing.T) {
	// Sesión pasada sin pase de lista: estado legítimo y frecuente, nunca un
	// error.
	ayer := ahora.Add(-24 * time.Hour).Unix()

	assert.Equal(t, SesionPendiente, ClasificarSesion(ayer, 0, ahora))
}

func TestClasificarSesionPasadaConRegistros(t *testing.T) {
	ayer := ahora.Add(-24 * time.Hour).Unix()

	assert.Equal(t, SesionCompletada, ClasificarSesion(ayer, 30, ahora))
}

func TestClasificarSesionEsParticion(t *testing.T) {
	// Toda combinación cae en exactamente uno de los tres estados.
	fechas := []int64{
		ahora.Add(-48 * time.Hour).Unix(),
		ahora.Add(-time.Second).Unix(),
		ahora.Unix(),
		ahora.Add(time.Second).Unix(),
		ahora.Add(72 * time.Hour).Unix(),
	}
	registros := []int64{0, 1, 17}

	for _, fecha := range fechas {
		for _, n := range registros {
			estado := ClasificarSesion(fecha, n, ahora)
			assert.Contains(t, []EstadoSesion{SesionCompletada, SesionPendiente, SesionFutura}, estado)
			if fecha*1000 > ahora.UnixMilli() {
				assert.Equal(t, SesionFutura, estado)
			} else {
				assert.NotEqual(t, SesionFutura, estado)
			}
		}
	}
}

func TestEsUsernameInstitucional(t *testing.T) {
	casos := []struct {
		username string
		esperado bool
	}{
		{"jperez", true},
		{"maria.lopez", true},
		{"docente2024", true},
		{"20231045", false},
		{"0001", false},
		{"", true},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, EsUsernameInstitucional(c.username), "username %q", c.username)
	}
}

package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	token, err := Generate("secreto", "user-1", "Compras", "listas-precios", 5)
	require.NoError(t, err)

	id, err := Parse("secreto", "listas-precios", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.Subject)
	assert.Equal(t, "Compras", id.Name)
}

func TestParse_Rechazos(t *testing.T) {
	token, err := Generate("secreto", "user-1", "", "listas-precios", 5)
	require.NoError(t, err)
	expired, err := Generate("secreto", "user-1", "", "listas-precios", -5)
	require.NoError(t, err)

	_, err = Parse("otro", "listas-precios", token)
	assert.Error(t, err, "firma incorrecta")

	_, err = Parse("secreto", "otro-emisor", token)
	assert.Error(t, err, "emisor distinto")

	_, err = Parse("secreto", "", expired)
	assert.Error(t, err, "expirado")

	_, err = Parse("", "", token)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = Parse("secreto", "", "no-es-un-token")
	assert.Error(t, err)
}

func TestGenerate_SinSubject(t *testing.T) {
	_, err := Generate("secreto", "", "", "", 5)
	assert.Error(t, err)
	_, err = Generate("", "user-1", "", "", 5)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

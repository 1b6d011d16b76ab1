package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "+5355512345", CleanPhone("+53 (55) 512-345"))
	assert.Equal(t, "5355512345", CleanPhone("53 555 123 45"))
	assert.Equal(t, "+53", CleanPhone("+53 abc"))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("+53 55 512 345"))
	assert.NoError(t, ValidatePhone("55512345"))
	assert.Error(t, ValidatePhone("5551234"))
	assert.Error(t, ValidatePhone("+53"))
	assert.Error(t, ValidatePhone(""))
}

func TestValidateImageURL(t *testing.T) {
	assert.NoError(t, ValidateImageURL("https://img.example.com/a.jpg"))
	assert.NoError(t, ValidateImageURL("http://img.example.com/a.jpg"))
	assert.Error(t, ValidateImageURL("/uploads/a.jpg"))
	assert.Error(t, ValidateImageURL("ftp://img.example.com/a.jpg"))
	assert.Error(t, ValidateImageURL("img.example.com/a.jpg"))
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAadhaar(t *testing.T) {
	assert.True(t, ValidAadhaar("123456789012"))
	assert.True(t, ValidAadhaar(" 123456789012 "))

	assert.False(t, ValidAadhaar("12345678901"))
	assert.False(t, ValidAadhaar("1234567890123"))
	assert.False(t, ValidAadhaar("12345678901a"))
	assert.False(t, ValidAadhaar(""))
}

func TestValidPAN(t *testing.T) {
	// Individual holder, surname initial matches the 5th character.
	assert.True(t, ValidPAN("ABCPS1234F", "Sharma"))
	assert.True(t, ValidPAN("abcps1234f", "sharma"))

	// Surname check only applies when an initial is supplied.
	assert.True(t, ValidPAN("ABCPS1234F", ""))

	// Company holder type skips the surname check entirely.
	assert.True(t, ValidPAN("ABCCX1234F", "Sharma"))

	assert.False(t, ValidPAN("ABCPS1234F", "Rao"))
	assert.False(t, ValidPAN("ABCXS1234F", "Sharma"), "unknown holder type code")
	assert.False(t, ValidPAN("ABCP51234F", "Sharma"), "digit in letter position")
	assert.False(t, ValidPAN("ABCPS123F", "Sharma"), "too short")
}

func TestSurnameInitial(t *testing.T) {
	assert.Equal(t, "S", SurnameInitial("Asha Sharma"))
	assert.Equal(t, "R", SurnameInitial("Rao"))
	assert.Equal(t, "", SurnameInitial("   "))
}

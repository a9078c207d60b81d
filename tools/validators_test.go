package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("alice@inst.edu"))
	assert.True(t, ValidateEmail("alice.b+found@sub.inst.edu"))
	assert.False(t, ValidateEmail("alice"))
	assert.False(t, ValidateEmail("alice@inst"))
	assert.False(t, ValidateEmail(""))
}

func TestHasInstitutionDomain(t *testing.T) {
	assert.True(t, HasInstitutionDomain("alice@inst.edu", "inst.edu"))
	assert.True(t, HasInstitutionDomain("Alice@INST.EDU", "inst.edu"))
	assert.True(t, HasInstitutionDomain("alice@cs.inst.edu", "inst.edu"))
	assert.False(t, HasInstitutionDomain("alice@gmail.com", "inst.edu"))
	assert.False(t, HasInstitutionDomain("alice@notinst.edu", "inst.edu"))
	assert.False(t, HasInstitutionDomain("alice", "inst.edu"))
	assert.False(t, HasInstitutionDomain("alice@inst.edu", ""))
}

func TestCheckPassword(t *testing.T) {
	assert.Equal(t, "password", CheckPassword("abc"))
	assert.Equal(t, "password", CheckPassword("abcde"))
	assert.Equal(t, "", CheckPassword("abcdef"))
}

func TestRandomCodeRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := RandomCode()
		assert.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, ComparePassword(hash, "secret1"))
	assert.False(t, ComparePassword(hash, "secret2"))
}

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "998901234567", NormalizePhone("+998 (90) 123-45-67"))
	assert.Equal(t, "998901234567", NormalizePhone("998901234567"))
	assert.Equal(t, "", NormalizePhone("abc - ()"))
}

func TestPhoneValid(t *testing.T) {
	assert.True(t, PhoneValid("9989012345"))
	assert.True(t, PhoneValid("998901234567"))
	assert.False(t, PhoneValid("998901234"))
	assert.False(t, PhoneValid(""))
}

func TestVideoExtensionAllowed(t *testing.T) {
	allowed := []string{"mov", "avi", "mp4", "webm", "mkv"}
	assert.True(t, VideoExtensionAllowed("promo.mp4", allowed))
	assert.True(t, VideoExtensionAllowed("clip.MOV", allowed))
	assert.False(t, VideoExtensionAllowed("clip.gif", allowed))
	assert.False(t, VideoExtensionAllowed("noext", allowed))
}

func TestFieldErrors(t *testing.T) {
	errs := FieldErrors{}
	errs.Add("phone_number", "Invalid phone number")
	errs.Add("full_name", "Full name is required")

	assert.Len(t, errs.Messages(), 2)
	assert.Equal(t, []string{"Invalid phone number"}, errs["phone_number"])
}

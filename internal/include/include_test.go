package include

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQuotedOnly(t *testing.T) {
	content := "#include \"a.h\"\n#include <sys.h>\n   #include \"b/c.h\"\n"
	assert.Equal(t, []string{"a.h", "b/c.h"}, Extract(content))
}

func TestExtractNoMatches(t *testing.T) {
	assert.Nil(t, Extract("int main() {}\n"))
}

func TestExtractRejectsPathsWithoutExtension(t *testing.T) {
	content := `#include "noext"` + "\n" + `#include "has.h"` + "\n"
	assert.Equal(t, []string{"has.h"}, Extract(content))
}

func TestCacheReturnsSameResultForIdenticalContent(t *testing.T) {
	c := NewCache()
	content := `#include "a.h"` + "\n"
	first := c.Extract(content)
	second := c.Extract(content)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a.h"}, first)
}

func TestCacheDistinguishesDifferentContent(t *testing.T) {
	c := NewCache()
	a := c.Extract(`#include "a.h"` + "\n")
	b := c.Extract(`#include "b.h"` + "\n")
	assert.Equal(t, []string{"a.h"}, a)
	assert.Equal(t, []string{"b.h"}, b)
}

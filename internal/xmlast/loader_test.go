package xmlast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol25-lang/sol25/internal/ast"
)

const fixture = `<program>
  <class name="Main" parent="Object">
    <method selector="run">
      <block arity="0">
        <assign order="1">
          <var name="x"/>
          <expr><literal class="String" value="hi"/></expr>
        </assign>
      </block>
    </method>
  </class>
</program>`

func TestLoadBuildsNodeTree(t *testing.T) {
	root, err := Load(strings.NewReader(fixture))
	require.NoError(t, err)

	assert.Equal(t, "program", root.Tag())
	classes := root.ChildrenByTag("class")
	require.Len(t, classes, 1)
	assert.Equal(t, "Main", ast.AttrString(classes[0], "name"))
	assert.Equal(t, "Object", ast.AttrString(classes[0], "parent"))

	method := classes[0].Child("method")
	require.NotNil(t, method)
	assert.Equal(t, "run", ast.AttrString(method, "selector"))

	block := method.Child("block")
	require.NotNil(t, block)
	assert.Equal(t, "0", ast.AttrString(block, "arity"))

	assigns := block.ChildrenByTag("assign")
	require.Len(t, assigns, 1)
	assert.Equal(t, "1", ast.AttrString(assigns[0], "order"))

	litExpr := assigns[0].Child("expr")
	require.NotNil(t, litExpr)
	lit := ast.Only(litExpr)
	assert.Equal(t, "literal", lit.Tag())
	assert.Equal(t, "String", ast.AttrString(lit, "class"))
	assert.Equal(t, "hi", ast.AttrString(lit, "value"))
}

func TestLoadRejectsMalformedXML(t *testing.T) {
	_, err := Load(strings.NewReader("<program><unterminated>"))
	assert.Error(t, err)
}

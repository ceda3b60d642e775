package keyword

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("rejects empty and whitespace-only input", func(t *testing.T) {
		require.False(t, Validate(""))
		require.False(t, Validate("   "))
		require.False(t, Validate("\t\n"))
	})

	t.Run("rejects short generic keywords", func(t *testing.T) {
		require.False(t, Validate("crm"))
		require.False(t, Validate("crm software"))
		require.False(t, Validate("email marketing tools"))
	})

	t.Run("accepts four or more words", func(t *testing.T) {
		require.True(t, Validate("crm software for small business"))
		require.True(t, Validate("one two three four"))
	})

	t.Run("comparison token bypasses length check", func(t *testing.T) {
		require.True(t, Validate("hubspot vs salesforce"))
		require.True(t, Validate("HubSpot VS Salesforce"))
		require.True(t, Validate("hubspot versus salesforce"))
		require.True(t, Validate("hubspot vs. salesforce"))
		// "vs" must be its own token, not a substring
		require.False(t, Validate("velvet vspace"))
	})

	t.Run("comparison phrases bypass length check", func(t *testing.T) {
		require.True(t, Validate("slack compared to teams"))
		require.True(t, Validate("notion better than evernote"))
		require.True(t, Validate("alternatives to photoshop"))
	})

	t.Run("qualifier requires at least three words", func(t *testing.T) {
		require.True(t, Validate("best crm software"))
		require.True(t, Validate("top email tools"))
		require.True(t, Validate("free invoice software"))
		require.False(t, Validate("best crm"))
		require.False(t, Validate("pricing tools"))
	})

	t.Run("leading question word suffices", func(t *testing.T) {
		require.True(t, Validate("what is crm"))
		require.True(t, Validate("which crm"))
		require.True(t, Validate("is notion good"))
		require.True(t, Validate("How do invoices work"))
		// question word must lead
		require.False(t, Validate("crm what"))
	})
}

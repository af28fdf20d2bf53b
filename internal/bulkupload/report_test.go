package bulkupload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/16mdiqbal/cronjobctl/internal/csvtable"
)

func TestErrorsCSV(t *testing.T) {
	errs := []Error{
		{Category: CategoryMissingColumn, Message: `column "PIC Team" not found`},
		{Row: 3, JobName: "daily", Category: CategoryInvalidTeam, Message: `unknown PIC team "X, Y"`, PicTeam: "X, Y", PicTeamSlug: "x-y"},
	}

	out := ErrorsCSV(errs)

	n, err := csvtable.ParseAndNormalize(out)
	require.NoError(t, err)
	require.Len(t, n.Table.Rows, 2)
	assert.Equal(t, "", n.Table.Rows[0][0])
	assert.Equal(t, "3", n.Table.Rows[1][0])
	assert.Equal(t, "X, Y", n.Table.Rows[1][4])
}

func TestTemplateValidatesClean(t *testing.T) {
	n, err := csvtable.ParseAndNormalize(Template())
	require.NoError(t, err)

	ref := NewReferenceSet([]PicTeam{
		{ID: "1", Slug: "qa-team", Name: "QA Team", IsActive: true},
		{ID: "2", Slug: "platform", Name: "Platform", IsActive: true},
	})
	assert.Empty(t, Validate(n.Table, ref))
}

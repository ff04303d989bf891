package pedigree

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

const sheetHeader = "Project\tFamily_id\tBika_id\tClient_id\tFamily_relationship\tGender\tAffected_or_not\n"

// sheet builds a tab separated sample sheet from pipe separated rows.
func sheet(rows ...string) string {
	var b strings.Builder
	b.WriteString(sheetHeader)
	for _, r := range rows {
		b.WriteString(strings.ReplaceAll(r, "|", "\t"))
		b.WriteString("\n")
	}
	return b.String()
}

func row(project, family, bika, client, rel, gender, affected string) SampleRow {
	return SampleRow{
		Project:            project,
		FamilyID:           family,
		BikaID:             bika,
		ClientID:           client,
		FamilyRelationship: rel,
		Gender:             gender,
		AffectedOrNot:      affected,
	}
}

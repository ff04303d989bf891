package pedigree

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	GenderMale       = "1"
	GenderOther      = "2"
	StatusUnaffected = "1"
	StatusAffected   = "2"
)

// PedRecord is one line of the PED file. Field order is column order.
type PedRecord struct {
	FamID    string `csv:"fam_id"`
	SampleID string `csv:"sample_id"`
	FatherID string `csv:"father_id"`
	MotherID string `csv:"mother_id"`
	Gender   string `csv:"gender"`
	Status   string `csv:"status"`
}

type ReheaderRecord struct {
	BikaID   string `csv:"bika_id"`
	ClientID string `csv:"client_id"`
}

// SetRecord lists the samples of one family, comma-joined in encounter order.
type SetRecord struct {
	FamID   string
	Samples []string
}

// FamID is the pipeline-wide family identifier, Project_Familyid.
func FamID(row SampleRow) string {
	return fmt.Sprintf("%s_%s", row.Project, row.FamilyID)
}

// DerivePed builds one PED record per row, in input order. A proband whose
// family has no father or mother row fails the whole derivation.
func DerivePed(rows []SampleRow, log logrus.FieldLogger) ([]PedRecord, error) {
	families := GroupFamilies(rows)

	runs := make([][]SampleRow, len(families))
	for i, f := range families {
		runs[i] = f
	}
	for _, id := range RepeatedKeys(runs, func(r SampleRow) string { return r.FamilyID }) {
		log.Warnf("Family_id %s appears in more than one block of consecutive rows: each block is treated as its own family", id)
	}

	out := make([]PedRecord, 0, len(rows))
	for _, family := range families {
		for _, p := range family {
			father, err := family.ParentID(p, Father)
			if err != nil {
				return nil, err
			}
			mother, err := family.ParentID(p, Mother)
			if err != nil {
				return nil, err
			}

			rec := PedRecord{
				FamID:    FamID(p),
				SampleID: p.BikaID,
				FatherID: father,
				MotherID: mother,
				Gender:   GenderOther,
				Status:   StatusAffected,
			}
			if p.Gender == "M" {
				rec.Gender = GenderMale
			}
			if p.AffectedOrNot == "no" {
				rec.Status = StatusUnaffected
			}

			out = append(out, rec)
		}
	}

	return out, nil
}

// DeriveReheader maps each row to its client-facing id, with spaces turned
// into underscores.
func DeriveReheader(rows []SampleRow) []ReheaderRecord {
	out := make([]ReheaderRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ReheaderRecord{
			BikaID:   row.BikaID,
			ClientID: strings.ReplaceAll(row.ClientID, " ", "_"),
		})
	}
	return out
}

// DeriveSets groups PED records by consecutive fam_id.
func DeriveSets(ped []PedRecord) []SetRecord {
	runs := GroupConsecutive(ped, func(r PedRecord) string { return r.FamID })

	out := make([]SetRecord, 0, len(runs))
	for _, run := range runs {
		set := SetRecord{FamID: run[0].FamID}
		for _, person := range run {
			set.Samples = append(set.Samples, person.SampleID)
		}
		out = append(out, set)
	}
	return out
}

package donors

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// A dataset is persisted as a JSONL snapshot: one record per line, each
// record object carrying an extra "kind" attribute first. Such a snapshot is
// human readable and diffs nicely, so snapshots can be versioned.
//
//	{"kind":"donation","id":"12","amount":"50.00","currency":{"code":"USD"}, ...}

// DecodeDataset reads a JSONL snapshot.
//
// Lines that are not valid records are skipped and reported in a
// *ValidationError returned along with the dataset of the valid ones. Any other
// error is a read error and the dataset is nil.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	ds := new(Dataset)
	verr := new(ValidationError)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var head struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(line, &head); err != nil {
			verr.add(RecordError{Index: lineNum, Issues: []string{err.Error()}})
			continue
		}
		kind, err := ParseKind(head.Kind)
		if err != nil {
			verr.add(RecordError{Kind: Kind(head.Kind), Index: lineNum, Issues: []string{err.Error()}})
			continue
		}
		if err := ds.Append(kind, line); err != nil {
			verr.add(RecordError{Kind: kind, Index: lineNum, Issues: []string{err.Error()}})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read dataset: %w", err)
	}
	return ds, verr.orNil()
}

// EncodeDataset writes a JSONL snapshot of ds, kinds in their canonical
// order, records in their dataset order.
func EncodeDataset(w io.Writer, ds *Dataset) error {
	bw := bufio.NewWriter(w)
	enc := func(kind Kind, records ...any) error {
		for _, r := range records {
			var rw jsonObjectWriter
			rw.Append("kind", kind)
			rw.EmbedFrom(r)
			line, err := rw.MarshalJSON()
			if err != nil {
				return fmt.Errorf("cannot encode %s: %w", kind, err)
			}
			bw.Write(line)
			bw.WriteByte('\n')
		}
		return nil
	}
	for _, err := range []error{
		enc(KindBudget, toAny(ds.Budgets)...),
		enc(KindCampaign, toAny(ds.Campaigns)...),
		enc(KindDonation, toAny(ds.Donations)...),
		enc(KindExpense, toAny(ds.Expenses)...),
		enc(KindGrant, toAny(ds.Grants)...),
		enc(KindProjectUpdate, toAny(ds.ProjectUpdates)...),
		enc(KindProject, toAny(ds.Projects)...),
	} {
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

func toAny[T any](records []T) []any {
	res := make([]any, len(records))
	for i, r := range records {
		res[i] = r
	}
	return res
}

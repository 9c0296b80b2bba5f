// Package table decodes tabular sources (CSV, TSV, XLSX), optionally
// compressed, into a header plus string rows.
//
// The decoders do not interpret cell values. Column selection and typing are
// left to the caller so that schema problems can be reported against the
// caller's own column names.
//
//	t, err := table.Read(r, table.CSV)
//	if err != nil {
//	    return err
//	}
//	col := t.Index("title")
package table

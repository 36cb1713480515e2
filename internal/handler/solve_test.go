package handler

import (
	"encoding/json"
	"testing"

	"github.com/deppfellow/go-hanoi/internal/errs"
	"github.com/deppfellow/go-hanoi/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantDisks int
		wantMsg   string
	}{
		{name: "one", raw: `1`, wantDisks: 1},
		{name: "ten", raw: `10`, wantDisks: 10},
		{name: "whole float", raw: `3.0`, wantDisks: 3},
		{name: "exponent", raw: `1e3`, wantDisks: 1000},
		{name: "huge is clamped", raw: `1e12`, wantDisks: 2147483647},
		{name: "beyond float64 is clamped", raw: `1e400`, wantDisks: 2147483647},
		{name: "negative beyond float64", raw: `-1e400`, wantMsg: errs.MsgInvalidDiskCount},
		{name: "missing", raw: ``, wantMsg: errs.MsgInvalidDiskCount},
		{name: "null", raw: `null`, wantMsg: errs.MsgInvalidDiskCount},
		{name: "string", raw: `"invalid"`, wantMsg: errs.MsgInvalidDiskCount},
		{name: "numeric string", raw: `"3"`, wantMsg: errs.MsgInvalidDiskCount},
		{name: "bool", raw: `true`, wantMsg: errs.MsgInvalidDiskCount},
		{name: "zero", raw: `0`, wantMsg: errs.MsgInvalidDiskCount},
		{name: "negative", raw: `-1`, wantMsg: errs.MsgInvalidDiskCount},
		{name: "fraction", raw: `2.5`, wantMsg: errs.MsgWholeDiskCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &SolveRequest{NumberOfDisks: json.RawMessage(tt.raw)}
			err := req.Validate()

			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantDisks, req.Disks())
				return
			}

			var verrs validation.CustomValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, "numberOfDisks", verrs[0].Field)
			assert.Equal(t, tt.wantMsg, verrs[0].Message)
		})
	}
}

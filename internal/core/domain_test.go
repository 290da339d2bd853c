package core

import "testing"

func TestValidateDate(t *testing.T) {
	cases := []struct {
		date string
		ok   bool
	}{
		{"2024-01-05", true},
		{"2024-12-31", true},
		{"", false},
		{"2024-1-5", false},
		{"2024-13-01", false},
		{"05-01-2024", false},
		{"not-a-date", false},
	}
	for i, tc := range cases {
		err := ValidateDate(tc.date)
		if tc.ok && err != nil {
			t.Fatalf("case %d (%q) expected ok, got %v", i, tc.date, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d (%q) expected error", i, tc.date)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{Amount: 12.5, Date: "2024-03-01", Description: "groceries", Category: "Food"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Zero is a legitimate amount.
	zero := good
	zero.Amount = 0
	if err := zero.Validate(); err != nil {
		t.Fatalf("zero amount should validate, got %v", err)
	}

	bads := []Transaction{
		{Amount: -1, Date: "2024-03-01", Description: "x", Category: "Food"},
		{Amount: 1, Date: "", Description: "x", Category: "Food"},
		{Amount: 1, Date: "2024-03-01", Description: "  ", Category: "Food"},
		{Amount: 1, Date: "2024-03-01", Description: "x", Category: ""},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestMonthKey(t *testing.T) {
	tx := Transaction{Date: "2024-01-05"}
	if got := tx.Month(); got != "2024-01" {
		t.Fatalf("month key = %q", got)
	}
}

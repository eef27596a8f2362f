package catalog

import "testing"

func TestIndicatorLookupIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"rsi", "RSI", " Rsi "} {
		spec, ok := Indicator(name)
		if !ok {
			t.Fatalf("expected %q to resolve", name)
		}
		if spec.SourceID != "STD;RSI" || spec.SourceVersion != "44.0" {
			t.Fatalf("unexpected RSI spec: %+v", spec)
		}
	}

	if _, ok := Indicator("VWAP"); ok {
		t.Fatal("expected unknown indicator to miss")
	}
}

func TestIndicatorOutputFieldsOrdered(t *testing.T) {
	spec, ok := Indicator("MACD")
	if !ok {
		t.Fatal("MACD missing from catalog")
	}
	want := []FieldMapping{
		{SourceKey: "4", OutputName: "Moving_Average_Convergence_Divergence_macd"},
		{SourceKey: "5", OutputName: "Moving_Average_Convergence_Divergence_signal"},
		{SourceKey: "2", OutputName: "Moving_Average_Convergence_Divergence_histogram"},
	}
	if len(spec.OutputFields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(spec.OutputFields))
	}
	for i, fm := range want {
		if spec.OutputFields[i] != fm {
			t.Fatalf("field %d: expected %+v, got %+v", i, fm, spec.OutputFields[i])
		}
	}
}

func TestValidTimeframe(t *testing.T) {
	for _, tf := range Timeframes {
		if !ValidTimeframe(tf) {
			t.Fatalf("expected %q valid", tf)
		}
	}
	for _, tf := range []string{"3m", "1H", "", "daily"} {
		if ValidTimeframe(tf) {
			t.Fatalf("expected %q invalid", tf)
		}
	}
}

func TestValidExchangeUppercases(t *testing.T) {
	if !ValidExchange("nse") {
		t.Fatal("expected lowercase nse to validate")
	}
	if ValidExchange("NOT_AN_EXCHANGE") {
		t.Fatal("expected unknown exchange to fail")
	}
}

func TestNormalizeNewsProvider(t *testing.T) {
	p, ok := NormalizeNewsProvider("COINDESK")
	if !ok || p != "coindesk" {
		t.Fatalf("expected coindesk, got %q ok=%v", p, ok)
	}

	p, ok = NormalizeNewsProvider("all")
	if !ok || p != "" {
		t.Fatalf("expected empty provider for all, got %q ok=%v", p, ok)
	}

	if _, ok := NormalizeNewsProvider("reuters"); ok {
		t.Fatal("expected unknown provider to fail")
	}
}

func TestValidArea(t *testing.T) {
	if !ValidArea("Asia") {
		t.Fatal("expected asia valid")
	}
	if ValidArea("antarctica") {
		t.Fatal("expected antarctica invalid")
	}
}

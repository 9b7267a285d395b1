package quota

import "testing"

func sample() Balance {
	return Balance{{"Free Monthly", 100}, {"Subscriber Monthly", 200}, {"Purchased Extra", 300}}
}

func TestDeduct_DrawsInOrder(t *testing.T) {
	b := sample()
	got, ok := b.Deduct(150)
	if !ok {
		t.Fatalf("deduct refused")
	}
	want := []int{0, 150, 300}
	for i, p := range got {
		if p.Seconds != want[i] {
			t.Fatalf("pool %s = %d, want %d", p.Name, p.Seconds, want[i])
		}
	}
	if b[0].Seconds != 100 {
		t.Fatalf("receiver mutated: %+v", b)
	}
}

func TestDeduct_AllOrNothing(t *testing.T) {
	b := Balance{{"a", 20}, {"b", 30}}
	got, ok := b.Deduct(51)
	if ok {
		t.Fatalf("expected refusal")
	}
	if got.Total() != 50 || got[0].Seconds != 20 {
		t.Fatalf("balance changed on refusal: %+v", got)
	}
	if _, ok := b.Deduct(-1); ok {
		t.Fatalf("negative deduction accepted")
	}
}

func TestDeduct_ExactAndZero(t *testing.T) {
	b := sample()
	got, ok := b.Deduct(600)
	if !ok || got.Total() != 0 {
		t.Fatalf("exact drain: ok=%v total=%d", ok, got.Total())
	}
	got, ok = b.Deduct(0)
	if !ok || got.Total() != 600 {
		t.Fatalf("zero deduct: ok=%v total=%d", ok, got.Total())
	}
}

func TestDeduct_SkipsNegativePools(t *testing.T) {
	b := Balance{{"broken", -10}, {"ok", 10}}
	if b.Total() != 10 {
		t.Fatalf("total = %d", b.Total())
	}
	got, ok := b.Deduct(5)
	if !ok || got[0].Seconds != -10 || got[1].Seconds != 5 {
		t.Fatalf("deduct = %+v ok=%v", got, ok)
	}
}

func TestNext(t *testing.T) {
	b := Balance{{"Free Monthly", 0}, {"Subscriber Monthly", 0}, {"Purchased Extra", 40}}
	if p := b.Next(); p.Name != "Purchased Extra" || p.Seconds != 40 {
		t.Fatalf("next = %+v", p)
	}
	if p := (Balance{{"x", 0}}).Next(); p.Name != NoPool || p.Seconds != 0 {
		t.Fatalf("empty next = %+v", p)
	}
	var empty Balance
	if empty.Next().Name != NoPool || empty.Total() != 0 {
		t.Fatalf("zero balance misbehaves")
	}
}

func TestSeconds(t *testing.T) {
	b := sample()
	if b.Seconds("Subscriber Monthly") != 200 || b.Seconds("missing") != 0 {
		t.Fatalf("Seconds lookup wrong")
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := map[int]string{0: "0s", 45: "45s", 60: "1m", 65: "1m 5s", 3600: "60m", -3: "0s"}
	for in, want := range cases {
		if got := FormatSeconds(in); got != want {
			t.Fatalf("FormatSeconds(%d) = %q, want %q", in, got, want)
		}
	}
}

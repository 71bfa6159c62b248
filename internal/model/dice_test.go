package model

import "testing"

func TestSequenceSource(t *testing.T) {
	d := NewDice(NewSequenceSource(6, 2, 5))
	want := []int32{6, 2, 5, 6, 2} // 循环
	for i, w := range want {
		if got := d.Roll(); got != w {
			t.Errorf("roll %d = %d, want %d", i, got, w)
		}
	}
}

func TestSeededSource(t *testing.T) {
	a, b := NewSeededSource(42), NewSeededSource(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Roll(), b.Roll()
		if va != vb {
			t.Fatalf("roll %d: %d != %d with the same seed", i, va, vb)
		}
		if va < 1 || va > 6 {
			t.Fatalf("roll %d out of range: %d", i, va)
		}
	}
}

func TestDefaultSourceRange(t *testing.T) {
	d := NewDice(nil)
	for i := 0; i < 1000; i++ {
		if v := d.Roll(); v < 1 || v > 6 {
			t.Fatalf("roll out of range: %d", v)
		}
	}
}

func TestClassify(t *testing.T) {
	for v := int32(1); v <= 6; v++ {
		tr := Classify(v)
		six := v == 6
		// 出基地与奖励回合目前绑定在同一个 6 上
		if tr.IsSix != six || tr.AllowsBaseExit != six || tr.ExtraTurnCandidate != six {
			t.Errorf("Classify(%d) = %+v", v, tr)
		}
	}
}

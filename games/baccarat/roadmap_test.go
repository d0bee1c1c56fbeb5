package baccarat

import "testing"

func results(codes string) []Result {
	out := make([]Result, 0, len(codes))
	for _, c := range codes {
		switch c {
		case 'P':
			out = append(out, Player)
		case 'B':
			out = append(out, Banker)
		case 'T':
			out = append(out, Tie)
		}
	}
	return out
}

func TestBeadPlateWrapsAtSixRows(t *testing.T) {
	plate := GenerateBeadPlate(results("BBPTPBP"))
	if len(plate) != 2 {
		t.Fatalf("7 results gave %d columns, want 2", len(plate))
	}
	if len(plate[0]) != 6 || len(plate[1]) != 1 {
		t.Errorf("column heights %d/%d, want 6/1", len(plate[0]), len(plate[1]))
	}
	if plate[0][3].Result != Tie {
		t.Error("bead plate should keep ties in place")
	}
}

func TestBigRoadStreaksAndTies(t *testing.T) {
	road := GenerateBigRoad(results("BBTP"))
	if len(road) != 2 {
		t.Fatalf("got %d columns, want 2", len(road))
	}
	if len(road[0]) != 2 || road[0][0].Result != Banker {
		t.Errorf("first column = %+v, want two bankers", road[0])
	}
	if road[0][1].TieCount != 1 {
		t.Errorf("tie count on last banker = %d, want 1", road[0][1].TieCount)
	}
	if len(road[1]) != 1 || road[1][0].Result != Player {
		t.Errorf("second column = %+v, want one player", road[1])
	}
}

func TestBigRoadDropsLeadingTie(t *testing.T) {
	road := GenerateBigRoad(results("TTB"))
	if len(road) != 1 || len(road[0]) != 1 {
		t.Fatalf("road = %+v, want a single banker cell", road)
	}
	if road[0][0].TieCount != 0 {
		t.Errorf("leading ties should be dropped, tie count %d", road[0][0].TieCount)
	}
}

func TestDerivedRoadOffsets(t *testing.T) {
	// Big road columns: BB | P | BBB | P -> heights 2,1,3,1.
	seq := results("BBPBBBP")

	bigEye := GenerateBigEyeBoy(seq)
	if len(bigEye) != 3 {
		t.Fatalf("big eye boy columns = %d, want 3", len(bigEye))
	}
	// Column 1 (height 1) against column 0 (height 2): depth 0 repeats.
	if bigEye[0][0] != Repeat {
		t.Error("depth reached by the reference column should mark a repeat")
	}
	// Column 2 (height 3) against column 1 (height 1): depths 1-2 break.
	if bigEye[1][0] != Repeat || bigEye[1][1] != Break || bigEye[1][2] != Break {
		t.Errorf("column 2 marks = %v, want repeat,break,break", bigEye[1])
	}

	small := GenerateSmallRoad(seq)
	if len(small) != 2 {
		t.Fatalf("small road columns = %d, want 2", len(small))
	}
	cockroach := GenerateCockroachRoad(seq)
	if len(cockroach) != 1 {
		t.Fatalf("cockroach road columns = %d, want 1", len(cockroach))
	}
}

func TestDerivedRoadsEmptyWhenShort(t *testing.T) {
	if road := GenerateCockroachRoad(results("BPB")); len(road) != 0 {
		t.Errorf("cockroach road on 3 columns = %v, want empty", road)
	}
}

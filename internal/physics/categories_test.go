package physics

import "testing"

func TestCategoriesAreDistinctPowersOfTwo(t *testing.T) {
	seen := make(map[Category]bool)
	for _, c := range Categories() {
		if c == 0 || c&(c-1) != 0 {
			t.Errorf("%s = %d is not a power of two", c, c)
		}
		if seen[c] {
			t.Errorf("%s assigned twice", c)
		}
		seen[c] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 categories, got %d", len(seen))
	}
}

func TestMasks(t *testing.T) {
	tests := []struct {
		name     string
		got      Category
		expected Category
	}{
		{"wall", WallMask(), CategoryWhiteBall | CategoryBlackBall},
		{"white ball", BallMask(TeamWhite), CategoryWall | CategoryBlackBlock},
		{"black ball", BallMask(TeamBlack), CategoryWall | CategoryWhiteBlock},
		{"white block", BlockMask(TeamWhite), CategoryBlackBall},
		{"black block", BlockMask(TeamBlack), CategoryWhiteBall},
		{"mask of nothing", Mask(), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("mask = %s, expected %s", tc.got, tc.expected)
			}
		})
	}
}

func TestFilterRoundTrip(t *testing.T) {
	f := Filter(CategoryWhiteBlock, BlockMask(TeamWhite))
	if f.Group != 0 {
		t.Errorf("Group = %d, expected 0", f.Group)
	}
	if Category(f.Categories) != CategoryWhiteBlock {
		t.Errorf("Categories = %d, expected %d", f.Categories, CategoryWhiteBlock)
	}
	if Category(f.Mask) != CategoryBlackBall {
		t.Errorf("Mask = %d, expected %d", f.Mask, CategoryBlackBall)
	}
}

func TestCategoryString(t *testing.T) {
	if CategoryBlackBlock.String() != "blackBlock" {
		t.Errorf("String() = %q", CategoryBlackBlock.String())
	}
	if !Mask(CategoryWall, CategoryWhiteBall).Has(CategoryWall) {
		t.Error("Has should find a set bit")
	}
	if Mask(CategoryWall).Has(CategoryWhiteBall) {
		t.Error("Has should not find an unset bit")
	}
}

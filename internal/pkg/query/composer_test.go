package query

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestComposePagedWindow(t *testing.T) {
	cases := []struct {
		name      string
		page      string
		limit     string
		wantSkip  int64
		wantLimit int64
		wantRange string
	}{
		{"defaults", "", "", 0, 9, "1-9"},
		{"page 2 limit 9", "2", "9", 9, 9, "10-18"},
		{"page 3 limit 5", "3", "5", 10, 5, "11-15"},
		{"invalid page falls back", "abc", "9", 0, 9, "1-9"},
		{"zero page falls back", "0", "9", 0, 9, "1-9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Compose(ListParams{Page: tc.page, Limit: tc.limit}, ProfilePaged)
			if q.Skip != tc.wantSkip {
				t.Errorf("skip = %d, want %d", q.Skip, tc.wantSkip)
			}
			if q.Limit != tc.wantLimit {
				t.Errorf("limit = %d, want %d", q.Limit, tc.wantLimit)
			}
			if q.ItemRange != tc.wantRange {
				t.Errorf("itemRange = %q, want %q", q.ItemRange, tc.wantRange)
			}
		})
	}
}

// 档位 B：page 直接作为 skip，不乘 limit，也不限制返回条数
func TestComposeOffsetWindow(t *testing.T) {
	q := Compose(ListParams{Page: "3"}, ProfileOffset)
	if q.Skip != 3 {
		t.Errorf("skip = %d, want 3", q.Skip)
	}
	if q.Limit >= 0 {
		t.Errorf("limit = %d, want unlimited", q.Limit)
	}
	if q.PageNo != 3 {
		t.Errorf("pageNo = %d, want 3", q.PageNo)
	}
}

func TestComposeFilters(t *testing.T) {
	q := Compose(ListParams{
		UserID:   "abc",
		Category: "tech",
		Slug:     "hello",
		Title:    "Go",
	}, ProfilePaged)

	for field, pattern := range map[string]string{
		"userId":   "abc",
		"category": "tech",
		"slug":     "hello",
		"title":    "Go",
	} {
		re, ok := q.Filter[field].(primitive.Regex)
		if !ok {
			t.Fatalf("filter[%s] is %T, want regex", field, q.Filter[field])
		}
		if re.Pattern != pattern || re.Options != "i" {
			t.Errorf("filter[%s] = %v, want /%s/i", field, re, pattern)
		}
	}
}

// category=all 等价于没有 category 过滤
func TestComposeCategoryAll(t *testing.T) {
	all := Compose(ListParams{Category: "all"}, ProfilePaged)
	none := Compose(ListParams{}, ProfilePaged)

	if !reflect.DeepEqual(all.Filter, none.Filter) {
		t.Errorf("category=all filter = %v, want %v", all.Filter, none.Filter)
	}
	if _, ok := all.Filter["category"]; ok {
		t.Error("category=all should not produce a category clause")
	}
}

func TestComposeSearchTermOr(t *testing.T) {
	q := Compose(ListParams{SearchTerm: "gopher"}, ProfilePaged)

	or, ok := q.Filter["$or"].(bson.A)
	if !ok {
		t.Fatalf("filter[$or] is %T, want bson.A", q.Filter["$or"])
	}
	if len(or) != 2 {
		t.Fatalf("len($or) = %d, want 2", len(or))
	}

	title := or[0].(bson.M)["title"].(primitive.Regex)
	content := or[1].(bson.M)["content"].(primitive.Regex)
	if title.Pattern != "gopher" || content.Pattern != "gopher" {
		t.Errorf("$or patterns = %v / %v, want gopher", title, content)
	}
}

// title 参数只覆盖独立的 title 子句，不影响 searchTerm 的 $or
func TestComposeTitleOverride(t *testing.T) {
	q := Compose(ListParams{SearchTerm: "x", Title: "y"}, ProfilePaged)

	re := q.Filter["title"].(primitive.Regex)
	if re.Pattern != "y" {
		t.Errorf("title pattern = %q, want %q", re.Pattern, "y")
	}
	if _, ok := q.Filter["$or"]; !ok {
		t.Error("searchTerm $or clause missing")
	}
}

func TestComposePostID(t *testing.T) {
	hex := "64dbeef064dbeef064dbeef0"
	q := Compose(ListParams{PostID: hex}, ProfilePaged)

	oid, ok := q.Filter["_id"].(primitive.ObjectID)
	if !ok {
		t.Fatalf("filter[_id] is %T, want ObjectID", q.Filter["_id"])
	}
	if oid.Hex() != hex {
		t.Errorf("_id = %s, want %s", oid.Hex(), hex)
	}

	// 非法 hex 原样保留，查询自然落空
	q = Compose(ListParams{PostID: "not-an-id"}, ProfilePaged)
	if q.Filter["_id"] != "not-an-id" {
		t.Errorf("invalid postId = %v, want raw string", q.Filter["_id"])
	}
}

// 历史行为：字面量 desc/asc 的方向与命名相反
func TestComposeSortLiterals(t *testing.T) {
	q := Compose(ListParams{Sort: "desc"}, ProfilePaged)
	want := bson.D{{Key: "createdAt", Value: 1}}
	if !reflect.DeepEqual(q.Sort, want) {
		t.Errorf("sort=desc → %v, want %v", q.Sort, want)
	}

	q = Compose(ListParams{Sort: "asc"}, ProfilePaged)
	want = bson.D{{Key: "createdAt", Value: -1}}
	if !reflect.DeepEqual(q.Sort, want) {
		t.Errorf("sort=asc → %v, want %v", q.Sort, want)
	}
}

func TestComposeSortFieldList(t *testing.T) {
	q := Compose(ListParams{Sort: "category,-createdAt"}, ProfilePaged)
	want := bson.D{
		{Key: "category", Value: 1},
		{Key: "createdAt", Value: -1},
	}
	if !reflect.DeepEqual(q.Sort, want) {
		t.Errorf("sort = %v, want %v", q.Sort, want)
	}
}

func TestComposeSelectProjection(t *testing.T) {
	q := Compose(ListParams{Select: "title,slug,-content"}, ProfilePaged)
	want := bson.D{
		{Key: "title", Value: 1},
		{Key: "slug", Value: 1},
		{Key: "content", Value: 0},
	}
	if !reflect.DeepEqual(q.Projection, want) {
		t.Errorf("projection = %v, want %v", q.Projection, want)
	}
}

func TestMonthAgoCalendarSubtraction(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)
	got := MonthAgo(now)
	want := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MonthAgo = %v, want %v", got, want)
	}

	// 上月没有同日时由 time.Date 归一化（3月31日 → 3月3日）
	now = time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	got = MonthAgo(now)
	want = time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MonthAgo normalized = %v, want %v", got, want)
	}
}

func TestEngagementScore(t *testing.T) {
	// P1: 10 赞 0 藏 = 20；P2: 5 赞 12 藏 = 22，P2 应排在 P1 之前
	p1 := EngagementScore(10, 0)
	p2 := EngagementScore(5, 12)
	if p1 != 20 || p2 != 22 {
		t.Errorf("scores = %d/%d, want 20/22", p1, p2)
	}
	if p2 <= p1 {
		t.Error("P2 should outrank P1")
	}
}

func TestTrendingPipelineShape(t *testing.T) {
	since := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	pipe := TrendingPipeline(since, 9, 9)

	if len(pipe) != 5 {
		t.Fatalf("pipeline stages = %d, want 5", len(pipe))
	}

	sortStage := pipe[2][0]
	if sortStage.Key != "$sort" {
		t.Fatalf("stage 3 = %s, want $sort", sortStage.Key)
	}
	sort := sortStage.Value.(bson.D)
	if sort[0].Key != "engagementScore" || sort[0].Value != -1 {
		t.Errorf("primary sort = %v, want engagementScore desc", sort[0])
	}
	if sort[1].Key != "createdAt" || sort[1].Value != -1 {
		t.Errorf("secondary sort = %v, want createdAt desc", sort[1])
	}
}

func TestUsersSort(t *testing.T) {
	if UsersSort("asc")[0].Value != 1 {
		t.Error("sort=asc should be ascending")
	}
	if UsersSort("desc")[0].Value != -1 {
		t.Error("sort=desc should be descending")
	}
	if UsersSort("")[0].Value != -1 {
		t.Error("default should be descending")
	}
}

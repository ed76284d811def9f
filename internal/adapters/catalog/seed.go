package catalog

import (
	"time"

	"github.com/nabe7855/FindMe/internal/domain/entities"
)

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// SeedStores returns the demo catalog used until the production catalog
// feed is wired up
func SeedStores() []*entities.Store {
	return []*entities.Store{
		{
			ID:           1,
			Name:         "美食楽苑",
			Genre:        "居酒屋",
			Area:         "新宿区",
			Prefecture:   "東京都",
			CatchPhrase:  "新宿の隠れ家で味わう、四季折々の創作和食",
			Rating:       4.5,
			ReviewCount:  128,
			ImageURL:     "https://picsum.photos/seed/restaurant1/800/600",
			Address:      "東京都新宿区新宿3-1-1",
			Phone:        "03-1234-5678",
			OpeningHours: "17:00～23:30",
			ClosingDay:   "日曜日",
			PriceRange:   "￥5,000～￥6,000",
			CreatedAt:    day("2023-08-01"),
			Reviews: []entities.Review{
				{ID: 101, Author: "田中", Rating: 5, Comment: "料理が本当に美味しい。特に旬の魚を使ったお造りは絶品でした。", Date: day("2023-10-26")},
				{ID: 102, Author: "鈴木", Rating: 4, Comment: "雰囲気が良く、デートに最適です。少し値段は張りますが価値はあります。", Date: day("2023-10-20")},
			},
		},
		{
			ID:           2,
			Name:         "Trattoria Cielo",
			Genre:        "イタリアン",
			Area:         "中央区",
			Prefecture:   "大阪府",
			CatchPhrase:  "心斎橋の空の下、本格石窯ピッツァとワインを",
			Rating:       4.2,
			ReviewCount:  95,
			ImageURL:     "https://picsum.photos/seed/restaurant2/800/600",
			Address:      "大阪府大阪市中央区心斎橋筋2-2-2",
			Phone:        "06-8765-4321",
			OpeningHours: "11:30～15:00, 18:00～22:00",
			ClosingDay:   "月曜日",
			PriceRange:   "￥4,000～￥5,000",
			CreatedAt:    day("2023-09-12"),
			Reviews: []entities.Review{
				{ID: 201, Author: "佐藤", Rating: 4, Comment: "ピザがモチモチで最高！パスタも美味しかったです。", Date: day("2023-11-01")},
				{ID: 202, Author: "高橋", Rating: 5, Comment: "店員さんの対応が素晴らしく、気持ちよく食事ができました。", Date: day("2023-10-15")},
			},
		},
		{
			ID:           3,
			Name:         "博多ラーメン 一心",
			Genre:        "ラーメン",
			Area:         "博多区",
			Prefecture:   "福岡県",
			CatchPhrase:  "創業三十年、変わらぬ本場の豚骨スープ",
			Rating:       4.8,
			ReviewCount:  340,
			ImageURL:     "https://picsum.photos/seed/restaurant3/800/600",
			Address:      "福岡県福岡市博多区博多駅前1-1-1",
			Phone:        "092-111-2222",
			OpeningHours: "11:00～翌2:00",
			ClosingDay:   "年中無休",
			PriceRange:   "～￥1,000",
			CreatedAt:    day("2023-07-20"),
			Reviews: []entities.Review{
				{ID: 301, Author: "渡辺", Rating: 5, Comment: "これぞ博多ラーメン！スープまで飲み干してしまいました。", Date: day("2023-11-05")},
			},
		},
		{
			ID:           4,
			Name:         "SALON de LUXE",
			Genre:        "美容室",
			Area:         "中区",
			Prefecture:   "愛知県",
			CatchPhrase:  "栄の上質空間で、あなただけのスタイルを",
			Rating:       4.9,
			ReviewCount:  78,
			ImageURL:     "https://picsum.photos/seed/salon1/800/600",
			Address:      "愛知県名古屋市中区栄3-3-3",
			Phone:        "052-333-4444",
			OpeningHours: "10:00～20:00",
			ClosingDay:   "火曜日",
			PriceRange:   "￥10,000～",
			CreatedAt:    day("2023-10-05"),
			Reviews: []entities.Review{
				{ID: 401, Author: "伊藤", Rating: 5, Comment: "カウンセリングが丁寧で、理想通りの髪型になりました！", Date: day("2023-10-28")},
			},
		},
		{
			ID:           5,
			Name:         "Cafe Foresta",
			Genre:        "カフェ",
			Area:         "札幌市中央区",
			Prefecture:   "北海道",
			CatchPhrase:  "森の中にいるような癒やしの空間で、自家焙煎コーヒーを",
			Rating:       4.6,
			ReviewCount:  152,
			ImageURL:     "https://picsum.photos/seed/cafe1/800/600",
			Address:      "北海道札幌市中央区南1条西2丁目",
			Phone:        "011-555-6666",
			OpeningHours: "9:00～19:00",
			ClosingDay:   "水曜日",
			PriceRange:   "￥1,000～￥2,000",
			CreatedAt:    day("2023-09-28"),
			Reviews: []entities.Review{
				{ID: 501, Author: "山田", Rating: 5, Comment: "コーヒーが美味しいのはもちろん、チーズケーキが絶品です。", Date: day("2023-11-03")},
				{ID: 502, Author: "加藤", Rating: 4, Comment: "読書するのにぴったりの静かで落ち着いたカフェ。", Date: day("2023-10-18")},
			},
		},
	}
}

package render

import (
	"math"

	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
	"github.com/RichDInfGrp/FimiliarVis/internal/normalize"
)

// buildKPIs computes the scalar summary block. The first two values come
// from fixed cells of the DISCOVERY sheet (first and second data row,
// second column); follower figures come from the FOLLOWERS sheet.
func buildKPIs(snap *entity.Snapshot, serviceStartDate string) entity.KPIs {
	k := entity.KPIs{
		TotalPosts:       len(snap.Posts),
		UniqueEngagers:   len(snap.EngagerSummary),
		ServiceStartDate: serviceStartDate,
	}

	if d := snap.Worksheet.Discovery; d != nil {
		k.ImpressionsTotal = toInt(d.Cell(0, 1))
		k.MembersReached = toInt(d.Cell(1, 1))
	}

	var sumEngagements, sumImpressions, sumRate float64
	var nEngagements, nImpressions, nRate int
	for _, p := range snap.Posts {
		if p.Engagements != nil {
			sumEngagements += *p.Engagements
			nEngagements++
		}
		if p.Impressions != nil {
			sumImpressions += *p.Impressions
			nImpressions++
		}
		if p.EngagementRate != nil {
			sumRate += *p.EngagementRate
			nRate++
		}
	}
	k.TotalEngagements = int(sumEngagements)
	k.AvgEngagementRate = roundTo(safeMean(sumRate, nRate), 2)
	k.AvgImpressions = roundTo(safeMean(sumImpressions, nImpressions), 0)
	k.AvgEngagementsPerPost = roundTo(safeMean(sumEngagements, nEngagements), 0)

	for _, c := range snap.Contacts {
		if c.IsICP {
			k.ICPContacts++
		}
	}
	for _, s := range snap.EngagerSummary {
		if s.IsICP {
			k.ICPEngagers++
		}
	}

	if f := snap.Worksheet.Followers; f != nil && f.Len() > 0 {
		total := f.Column("Total Followers")
		if len(total) > 0 {
			k.StartFollowers = toInt(total[0])
			k.LatestFollowers = toInt(total[len(total)-1])
		}
		for _, v := range f.Column("New followers") {
			k.NewFollowers += toInt(v)
		}
	}

	return k
}

func toInt(v any) int {
	if n := normalize.ParseNumber(v); n != nil {
		return int(*n)
	}
	return 0
}

func safeMean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

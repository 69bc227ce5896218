package service_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	service "github.com/okian/sumoheat/internal/app"
	"github.com/okian/sumoheat/internal/domain/banzuke"
	"github.com/okian/sumoheat/internal/domain/model"
	"github.com/okian/sumoheat/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func randomBout(rng *rand.Rand) model.Bout {
	ranks := banzuke.AllRanks()
	day := banzuke.Day(rng.Intn(15) + 1)
	maxWins := day.MaxPossibleWins()
	eastWins := rng.Intn(maxWins + 1)
	westWins := rng.Intn(maxWins + 1)
	return model.Bout{
		Day:      day,
		EastRank: ranks[rng.Intn(len(ranks))],
		WestRank: ranks[rng.Intn(len(ranks))],
		East:     model.Record{Wins: eastWins, Losses: maxWins - eastWins},
		West:     model.Record{Wins: westWins, Losses: maxWins - westWins},
		Result:   banzuke.Result(rng.Intn(2) + 1),
	}
}

func TestService_ConcurrentScoring(t *testing.T) {
	Convey("Given a started service and a batch of random bouts", t, func() {
		ctx := context.Background()
		svc := service.New()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		rng := rand.New(rand.NewSource(7))
		bouts := make([]model.Bout, 200)
		for i := range bouts {
			bouts[i] = randomBout(rng)
		}

		Convey("When scoring them from several goroutines", func() {
			const workers = 8
			results := make([]scoring.Result, len(bouts))
			errs := make([]error, len(bouts))

			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func(offset int) {
					defer wg.Done()
					for i := offset; i < len(bouts); i += workers {
						results[i], errs[i] = svc.Score(ctx, bouts[i])
					}
				}(w)
			}
			wg.Wait()

			Convey("Then every result matches a sequential computation", func() {
				for i, b := range bouts {
					So(errs[i], ShouldBeNil)
					So(results[i], ShouldResemble, scoring.Calculate(b))
					So(results[i].Score, ShouldBeBetweenOrEqual, 0, 100)
				}
			})

			Convey("And the counters add up", func() {
				stats := svc.GetStats()
				So(stats["scored"], ShouldEqual, int64(len(bouts)))
				So(stats["rejected"], ShouldEqual, int64(0))
				So(stats["meanScore"].(float64), ShouldBeBetweenOrEqual, 0, 100)
			})
		})
	})
}

package routes

import (
	"strconv"
	"time"

	"github.com/atomo10/atomo/pkg/ctdf"
	"github.com/gocarina/gocsv"
	"github.com/gofiber/fiber/v2"
)

type etaRow struct {
	StopIndex int    `csv:"stop_index"`
	Stop      string `csv:"stop"`
	Trip      int    `csv:"trip"`
	Arrival   string `csv:"arrival"`
}

func (r *linesRoutes) getETA(c *fiber.Ctx) error {
	fromStopIndex := 0
	if value := c.Query("from_stop_index"); value != "" {
		index, err := strconv.Atoi(value)
		if err != nil {
			return badRequest("Parameter from_stop_index should be an integer")
		}
		fromStopIndex = index
	}

	etas, err := r.repository.ComputeETA(c.UserContext(), c.Params("identifier"), fromStopIndex, c.Query("now"))
	r.observeETA(etas, err)
	if err != nil {
		return err
	}

	if c.Query("format") == "csv" {
		return sendETACSV(c, etas, time.Now())
	}

	return c.JSON(fiber.Map{
		"etas": etas,
	})
}

func sendETACSV(c *fiber.Ctx, etas []*ctdf.ETAEntry, generated time.Time) error {
	rows := []*etaRow{}
	for _, eta := range etas {
		for trip, arrival := range eta.Arrivals {
			rows = append(rows, &etaRow{
				StopIndex: eta.StopIndex,
				Stop:      eta.Stop,
				Trip:      trip + 1,
				Arrival:   arrival,
			})
		}
	}

	csvBytes, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=\"eta-"+generated.Format("150405")+".csv\"")

	return c.Send(csvBytes)
}

func (r *linesRoutes) observeETA(etas []*ctdf.ETAEntry, err error) {
	if r.metrics == nil {
		return
	}

	if err != nil {
		r.metrics.ETAProjections.WithLabelValues(ctdf.ErrorKind(err)).Inc()
		return
	}

	r.metrics.ETAProjections.WithLabelValues("ok").Inc()
	r.metrics.ETAProjectedStops.Observe(float64(len(etas)))
}

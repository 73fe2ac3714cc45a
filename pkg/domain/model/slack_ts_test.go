package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/domain/model"
)

func TestTimeFromSlackTS(t *testing.T) {
	t.Run("whole seconds", func(t *testing.T) {
		got, err := model.TimeFromSlackTS("1662768000")
		gt.NoError(t, err).Required()
		gt.Value(t, got).Equal(time.Date(2022, 9, 10, 0, 0, 0, 0, time.UTC))
	})

	t.Run("fractional seconds", func(t *testing.T) {
		got, err := model.TimeFromSlackTS("1662768000.123456")
		gt.NoError(t, err).Required()
		gt.Value(t, got).Equal(time.Date(2022, 9, 10, 0, 0, 0, 123456000, time.UTC))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := model.TimeFromSlackTS("not-a-ts")
		gt.Error(t, err)
	})
}

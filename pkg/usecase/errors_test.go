package usecase_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slack-deploy-pipeline/pkg/usecase"
)

func TestErrors_ErrorsAreDistinct(t *testing.T) {
	gt.Value(t, usecase.ErrMergeQueueResolution).NotNil()
	gt.Value(t, usecase.ErrStatusRequired).NotNil()
	gt.Bool(t, errors.Is(usecase.ErrMergeQueueResolution, usecase.ErrStatusRequired)).False()
}

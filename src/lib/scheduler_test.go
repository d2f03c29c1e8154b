package lib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateDailyJob(t *testing.T) {
	sched, err := GetScheduler()
	assert.Nil(t, err)

	before := len(sched.Jobs())
	id, err := CreateDailyJob(2, 0, func() {})
	assert.Nil(t, err)
	assert.NotNil(t, id)
	assert.Equal(t, before+1, len(sched.Jobs()))
}

func TestCreateCronJob(t *testing.T) {
	sched, err := GetScheduler()
	assert.Nil(t, err)

	before := len(sched.Jobs())
	id, err := CreateCronJob(func() {}, time.Hour)
	assert.Nil(t, err)
	assert.NotNil(t, id)
	assert.Equal(t, before+1, len(sched.Jobs()))
}

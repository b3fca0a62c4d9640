package api

import "github.com/stretchr/testify/mock"

// TableServiceMock is a testify mock of TableService.
type TableServiceMock struct {
	mock.Mock
}

func NewTableServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *TableServiceMock {
	m := &TableServiceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableServiceMock) Ready() bool {
	return m.Called().Bool(0)
}

func (m *TableServiceMock) ListTables() ([]string, error) {
	args := m.Called()
	tables, _ := args.Get(0).([]string)
	return tables, args.Error(1)
}

func (m *TableServiceMock) RowLabels(table string) ([]string, error) {
	args := m.Called(table)
	rows, _ := args.Get(0).([]string)
	return rows, args.Error(1)
}

func (m *TableServiceMock) RowSum(table, row string) (float64, error) {
	args := m.Called(table, row)
	return args.Get(0).(float64), args.Error(1)
}

package server

import (
	"errors"
	"net/http"

	"github.com/theirongolddev/taxdiff/internal/tax"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CompareRequest is the body of POST /v1/compare.
type CompareRequest struct {
	Salary      float64           `json:"salary" binding:"min=0"`
	OtherIncome float64           `json:"other_income" binding:"min=0"`
	Special     SpecialRequest    `json:"special"`
	Deductions  DeductionsRequest `json:"deductions"`
}

// SpecialRequest carries the flat-rate income lines.
type SpecialRequest struct {
	ShortTermGains  float64 `json:"stcg" binding:"min=0"`
	LongTermGains   float64 `json:"ltcg" binding:"min=0"`
	LotteryWinnings float64 `json:"lottery" binding:"min=0"`
	CryptoIncome    float64 `json:"crypto" binding:"min=0"`
}

// DeductionsRequest carries the old regime's itemized deductions.
type DeductionsRequest struct {
	Section80C   float64 `json:"section_80c" binding:"min=0"`
	Section80D   float64 `json:"section_80d" binding:"min=0"`
	HRA          float64 `json:"hra" binding:"min=0"`
	Section80TTA float64 `json:"section_80tta" binding:"min=0"`
}

// Input converts the request into an engine input.
func (r CompareRequest) Input() tax.Input {
	return tax.NewInput(
		tax.Income{Salary: r.Salary, Other: r.OtherIncome},
		tax.OldRegimeDeductions(r.Deductions),
		tax.SpecialIncome(r.Special),
	)
}

// CompareResponse is the body returned by POST /v1/compare.
type CompareResponse struct {
	tax.Comparison
	Verdict string `json:"verdict"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func (s *Service) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok\n")
}

func (s *Service) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleSchedules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"schedules": map[tax.Regime]tax.Schedule{
			tax.RegimeOld: tax.RegimeOld.Schedule(),
			tax.RegimeNew: tax.RegimeNew.Schedule(),
		},
		"standard_deduction": tax.StandardDeduction,
		"cess_rate":          tax.SurchargeRate,
	})
}

func (s *Service) handleCompare(c *gin.Context) {
	log := requestLogger(c, s.log)

	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("invalid compare request", zap.Error(err))
		s.reject()
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Code:    "INVALID_REQUEST",
			Details: err.Error(),
		})
		return
	}

	in := req.Input()
	if err := in.Validate(); err != nil {
		log.Warn("rejected compare input", zap.Error(err))
		s.reject()
		code := "NEGATIVE_AMOUNT"
		if errors.Is(err, tax.ErrAmountTooLarge) {
			code = "AMOUNT_TOO_LARGE"
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid amount",
			Code:    code,
			Details: err.Error(),
		})
		return
	}

	result := tax.CompareRegimes(in)
	s.record(result)

	log.Debug("compared regimes",
		zap.String("better_regime", string(result.Better)),
		zap.Float64("savings", result.Savings),
	)

	c.JSON(http.StatusOK, CompareResponse{
		Comparison: result,
		Verdict:    result.Verdict(),
	})
}

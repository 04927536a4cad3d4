package seiz

import "fmt"

// BaseParams configures the shared SEIZ transition rule.
//
// beta and b are per-neighbor contact rates (infected and skeptic contacts),
// rho and eps are incubation rates, p and l resolve a triggered contact to
// Infected or Skeptic rather than Exposed, dt is the step duration.
type BaseParams struct {
	Beta float64 `json:"beta"`
	B    float64 `json:"b"`
	Rho  float64 `json:"rho"`
	Eps  float64 `json:"eps"`
	P    float64 `json:"p"`
	L    float64 `json:"l"`
	Dt   float64 `json:"dt"`
}

// Validate checks all parameter domains. Probabilities must lie in [0,1],
// rates must be non-negative, dt must be positive.
func (p BaseParams) Validate() error {
	if err := checkRate("beta", p.Beta); err != nil {
		return err
	}
	if err := checkRate("b", p.B); err != nil {
		return err
	}
	if err := checkRate("rho", p.Rho); err != nil {
		return err
	}
	if err := checkRate("eps", p.Eps); err != nil {
		return err
	}
	if err := checkProb("p", p.P); err != nil {
		return err
	}
	if err := checkProb("l", p.L); err != nil {
		return err
	}
	if p.Dt <= 0 {
		return fmt.Errorf("dt=%v: time step must be positive: %w", p.Dt, ErrInvalidParameter)
	}
	return nil
}

func (p BaseParams) base() baseConfig {
	return baseConfig{beta: p.Beta, b: p.B, rho: p.Rho, eps: p.Eps, p: p.P, l: p.L, dt: p.Dt}
}

// BasicModeratorParams configures the SEIZ-BM variant: the base rule plus a
// state-blind moderation pass that selects each infected node with
// probability mu*dt and succeeds with probability m.
// A zero Dt defaults to 1.0.
type BasicModeratorParams struct {
	Beta    float64 `json:"beta"`
	B       float64 `json:"b"`
	Rho     float64 `json:"rho"`
	Epsilon float64 `json:"epsilon"`
	P       float64 `json:"p"`
	L       float64 `json:"l"`
	Mu      float64 `json:"mu"`
	M       float64 `json:"m"`
	Dt      float64 `json:"dt"`
}

func (p BasicModeratorParams) withDefaults() BasicModeratorParams {
	if p.Dt == 0 {
		p.Dt = 1.0
	}
	return p
}

// Validate checks all parameter domains after defaults are applied.
func (p BasicModeratorParams) Validate() error {
	if err := checkRate("beta", p.Beta); err != nil {
		return err
	}
	if err := checkRate("b", p.B); err != nil {
		return err
	}
	if err := checkRate("rho", p.Rho); err != nil {
		return err
	}
	if err := checkRate("epsilon", p.Epsilon); err != nil {
		return err
	}
	if err := checkProb("p", p.P); err != nil {
		return err
	}
	if err := checkProb("l", p.L); err != nil {
		return err
	}
	if err := checkRate("mu", p.Mu); err != nil {
		return err
	}
	if err := checkProb("m", p.M); err != nil {
		return err
	}
	if p.Dt <= 0 {
		return fmt.Errorf("dt=%v: time step must be positive: %w", p.Dt, ErrInvalidParameter)
	}
	return nil
}

func (p BasicModeratorParams) base() baseConfig {
	return baseConfig{beta: p.Beta, b: p.B, rho: p.Rho, eps: p.Epsilon, p: p.P, l: p.L, dt: p.Dt}
}

// SmartModeratorParams configures the SEIZ-SM variant: the base rule plus a
// message-generation and toxicity-scoring pass. Each infected node generates
// n messages per step; a message is toxic when its score reaches threshold T;
// a node with at least theta toxic messages is flagged and moderated to
// Exposed with probability eta, then onward to Skeptic with probability
// lambd. The step duration is fixed at 1.0.
type SmartModeratorParams struct {
	Beta    float64 `json:"beta"`
	B       float64 `json:"b"`
	Rho     float64 `json:"rho"`
	Epsilon float64 `json:"epsilon"`
	P       float64 `json:"p"`
	L       float64 `json:"l"`
	N       int     `json:"n"`
	Theta   int     `json:"theta"`
	T       float64 `json:"T"`
	Eta     float64 `json:"eta"`
	Lambd   float64 `json:"lambd"`
}

// Validate checks all parameter domains.
func (p SmartModeratorParams) Validate() error {
	if err := checkRate("beta", p.Beta); err != nil {
		return err
	}
	if err := checkRate("b", p.B); err != nil {
		return err
	}
	if err := checkRate("rho", p.Rho); err != nil {
		return err
	}
	if err := checkRate("epsilon", p.Epsilon); err != nil {
		return err
	}
	if err := checkProb("p", p.P); err != nil {
		return err
	}
	if err := checkProb("l", p.L); err != nil {
		return err
	}
	if p.N < 1 {
		return fmt.Errorf("n=%d: message budget must be a positive integer: %w", p.N, ErrInvalidParameter)
	}
	if p.Theta < 1 {
		return fmt.Errorf("theta=%d: flagging threshold must be a positive integer: %w", p.Theta, ErrInvalidParameter)
	}
	if err := checkProb("T", p.T); err != nil {
		return err
	}
	if err := checkProb("eta", p.Eta); err != nil {
		return err
	}
	if err := checkProb("lambd", p.Lambd); err != nil {
		return err
	}
	return nil
}

func (p SmartModeratorParams) base() baseConfig {
	return baseConfig{beta: p.Beta, b: p.B, rho: p.Rho, eps: p.Epsilon, p: p.P, l: p.L, dt: 1.0}
}

func checkProb(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s=%v: probability must be in [0,1]: %w", name, v, ErrInvalidParameter)
	}
	return nil
}

func checkRate(name string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s=%v: rate must be non-negative: %w", name, v, ErrInvalidParameter)
	}
	return nil
}

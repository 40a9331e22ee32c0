// Package transition implements the digit-pair transition algebra between
// Ditrunes. The digit function c = (-(a+b)) mod 3 is total over {0,1,2}^2,
// and applying it position-wise across two Ditrunes produces a third, the
// Transgram. In balanced-ternary terms the function is bal(c) = -(bal(a) +
// bal(b)) mod 3, which is what makes the Axial Resonance law hold on any
// per-digit balanced lattice encoding.
package transition

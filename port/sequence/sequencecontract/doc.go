// Package sequencecontract holds the behavioural contracts of the sequence capability interfaces.
//
//	func TestMyProducer(t *testing.T) {
//		sequencecontract.Full(func(tb testing.TB) sequencecontract.Subject[int, *MyProducer] {
//			vs := []int{1, 2, 3}
//			return sequencecontract.Subject[int, *MyProducer]{Producer: NewMyProducer(vs...), Values: vs}
//		}).Test(t)
//	}
package sequencecontract

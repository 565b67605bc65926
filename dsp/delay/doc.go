// Package delay provides a feedback echo whose length can change while it
// runs. A length change is recorded by the setter and applied at the start
// of the next processed sample, keeping the newest echo history.
package delay

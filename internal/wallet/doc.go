// Package wallet is the wallet library the session registry delegates to.
//
// A wallet is an aezeed cipher seed whose entropy is the BIP32 master seed.
// Only the native segwit receive key m/84'/coin'/0'/0/0 is used. The
// entropy is stored sealed with a key derived from the owner's secret and
// is decrypted again for every payment; an open [Wallet] keeps only public
// data in memory.
//
// Every open wallet runs a balance synchronizer goroutine until Close.
package wallet

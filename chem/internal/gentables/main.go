// Command gentables renders chem/tables.go from the CSV files under
// chem/data/. Run through go generate in the chem package.
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"text/template"
)

type canonicalAminoAcid struct {
	Name, Code, ThreeLetterCode, Composition, MonoMass, AverageMass string
}

type nonCanonicalAminoAcid struct {
	Name, Code, ThreeLetterCode, MonoMass, AverageMass string
}

type element struct {
	Name, Symbol, MonoMass, AverageMass string
}

type particle struct {
	Name, Mass string
}

type retentionCoefficient struct {
	Code, Rn, Rcnt string
}

type tableData struct {
	Canonical    []canonicalAminoAcid
	NonCanonical []nonCanonicalAminoAcid
	Elements     []element
	Particles    []particle
	Retention    []retentionCoefficient
}

func readCSV(path string, columns int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = columns
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	return rows[1:], nil // skip header
}

func load() (*tableData, error) {
	var data tableData

	rows, err := readCSV("data/canonical_amino_acids.csv", 6)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		data.Canonical = append(data.Canonical, canonicalAminoAcid{
			Name: r[0], Code: r[1], ThreeLetterCode: r[2],
			Composition: r[3], MonoMass: r[4], AverageMass: r[5],
		})
	}

	rows, err = readCSV("data/non_canonical_amino_acids.csv", 5)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		data.NonCanonical = append(data.NonCanonical, nonCanonicalAminoAcid{
			Name: r[0], Code: r[1], ThreeLetterCode: r[2],
			MonoMass: r[3], AverageMass: r[4],
		})
	}

	rows, err = readCSV("data/elements.csv", 4)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		data.Elements = append(data.Elements, element{
			Name: r[0], Symbol: r[1], MonoMass: r[2], AverageMass: r[3],
		})
	}

	rows, err = readCSV("data/subatomic_particles.csv", 2)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		data.Particles = append(data.Particles, particle{Name: r[0], Mass: r[1]})
	}

	rows, err = readCSV("data/krokhin_wilkins_retention_coefficients.csv", 3)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		data.Retention = append(data.Retention, retentionCoefficient{
			Code: r[0], Rn: r[1], Rcnt: r[2],
		})
	}

	return &data, nil
}

var tablesTemplate = template.Must(template.New("tables").Parse(`// Code generated by gentables from data/*.csv. DO NOT EDIT.

package chem

var aminoAcids = []*AminoAcid{
{{- range .Canonical}}
	{Name: {{printf "%q" .Name}}, Code: '{{.Code}}', ThreeLetterCode: {{printf "%q" .ThreeLetterCode}}, Composition: {{printf "%q" .Composition}}, MonoMass: {{.MonoMass}}, AverageMass: {{.AverageMass}}, Canonical: true},
{{- end}}
{{- range .NonCanonical}}
	{Name: {{printf "%q" .Name}}, Code: '{{.Code}}', ThreeLetterCode: {{printf "%q" .ThreeLetterCode}}, MonoMass: {{.MonoMass}}, AverageMass: {{.AverageMass}}},
{{- end}}
}

var aminoAcidsByCode = func() map[byte]*AminoAcid {
	m := make(map[byte]*AminoAcid, len(aminoAcids))
	for _, aa := range aminoAcids {
		m[aa.Code] = aa
	}
	return m
}()

var elements = []*Element{
{{- range .Elements}}
	{Name: {{printf "%q" .Name}}, Symbol: {{printf "%q" .Symbol}}, MonoMass: {{.MonoMass}}, AverageMass: {{.AverageMass}}},
{{- end}}
}

var elementsBySymbol = func() map[string]*Element {
	m := make(map[string]*Element, len(elements))
	for _, e := range elements {
		m[e.Symbol] = e
	}
	return m
}()

var particles = []*Particle{
{{- range .Particles}}
	{Name: {{printf "%q" .Name}}, Mass: {{.Mass}}},
{{- end}}
}

var particlesByName = func() map[string]*Particle {
	m := make(map[string]*Particle, len(particles))
	for _, p := range particles {
		m[p.Name] = p
	}
	return m
}()

// retentionCoefficient carries the Krokhin-Wilkins v1 coefficients: Rn
// for every occurrence, Rcnt weighted over the first three positions.
type retentionCoefficient struct {
	rn   float64
	rcnt float64
}

var retentionCoefficients = map[byte]retentionCoefficient{
{{- range .Retention}}
	'{{.Code}}': {rn: {{.Rn}}, rcnt: {{.Rcnt}}},
{{- end}}
}
`))

func main() {
	data, err := load()
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create("tables.go")
	if err != nil {
		log.Fatal(err)
	}
	if err := tablesTemplate.Execute(f, data); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}
